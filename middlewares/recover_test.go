package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/internal"
	"github.com/dmitrymomot/folio/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	type custom struct{ Code int }
	cause := errors.New("boom")

	tests := []struct {
		name  string
		value any
	}{
		{name: "string", value: "test panic"},
		{name: "error", value: cause},
		{name: "int", value: 42},
		{name: "struct", value: custom{Code: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
			err := middlewares.Recover()(func(internal.Context) error {
				panic(tt.value)
			})(c)

			require.Error(t, err)
			pe, ok := middlewares.AsPanicError(err)
			require.True(t, ok)
			assert.Equal(t, tt.value, pe.Value)
			assert.NotEmpty(t, pe.Stack)
		})
	}

	t.Run("error panic unwraps", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.Recover()(func(internal.Context) error {
			panic(cause)
		})(c)

		assert.ErrorIs(t, err, cause)
	})

	t.Run("passes through without panic", func(t *testing.T) {
		t.Parallel()

		want := errors.New("handler failed")
		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.Recover()(func(internal.Context) error {
			return want
		})(c)

		assert.ErrorIs(t, err, want)
		assert.False(t, middlewares.IsPanicError(err))
	})

	t.Run("stack disabled", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.Recover(middlewares.WithRecoverDisableStack())(func(internal.Context) error {
			panic("no stack")
		})(c)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		assert.Nil(t, pe.Stack)
	})

	t.Run("stack size is capped", func(t *testing.T) {
		t.Parallel()

		c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.Recover(middlewares.WithRecoverStackSize(64))(func(internal.Context) error {
			panic("small")
		})(c)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		assert.LessOrEqual(t, len(pe.Stack), 64)
		assert.Equal(t, "panic: small", pe.Error())
	})
}
