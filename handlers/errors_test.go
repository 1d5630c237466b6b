package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio"
)

type panicking struct{}

func (panicking) Routes(r folio.Router) {
	r.GET("/boom", func(folio.Context) error { panic("secret internals") })
}

type errorJSON struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	app := newApp(t, newStore(t), panicking{})

	t.Run("panic hides details", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		req.Header.Set("Accept", "application/json")
		rec := serve(app, req)
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var got errorJSON
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "panic", got.Error.Code)
		assert.Equal(t, "Something went wrong on our side.", got.Error.Message)
		assert.Equal(t, rec.Header().Get("X-Request-ID"), got.Error.RequestID)
		assert.NotContains(t, rec.Body.String(), "secret internals")
	})

	t.Run("not found page is localized", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		req.Header.Set("Accept-Language", "pt-PT")
		rec := serve(app, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "A página que procura não existe.")
		assert.Contains(t, rec.Body.String(), "<html")
	})

	t.Run("htmx gets the alert only", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		req.Header.Set("HX-Request", "true")
		rec := serve(app, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `data-status="404"`)
		assert.NotContains(t, rec.Body.String(), "<html")
	})
}
