package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/internal"
	"github.com/dmitrymomot/folio/middlewares"
)

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("completes in time", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.Timeout(time.Second)(func(internal.Context) error { return nil })(c)
		require.NoError(t, err)
	})

	t.Run("deadline is visible to the handler", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.Timeout(time.Second)(func(c internal.Context) error {
			_, ok := c.Request().Context().Deadline()
			assert.True(t, ok)
			return nil
		})(c)
		require.NoError(t, err)
	})

	t.Run("returns TimeoutError", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.Timeout(10 * time.Millisecond)(func(c internal.Context) error {
			<-c.Request().Context().Done()
			return c.Request().Context().Err()
		})(c)

		require.Error(t, err)
		te, ok := middlewares.AsTimeoutError(err)
		require.True(t, ok)
		assert.Equal(t, 10*time.Millisecond, te.Duration)
		assert.Equal(t, "request timeout after 10ms", te.Error())
	})

	t.Run("handler error passes through", func(t *testing.T) {
		t.Parallel()

		want := errors.New("nope")
		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.Timeout(0)(func(internal.Context) error { return want })(c)

		assert.ErrorIs(t, err, want)
		assert.False(t, middlewares.IsTimeoutError(err))
	})
}
