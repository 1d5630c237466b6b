package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)

	require.Equal(t, http.StatusNotFound, rw.Status())
	require.Equal(t, http.StatusNotFound, w.Code)
	require.True(t, rw.Written())
}

func TestResponseWriter_HTMXStatusRewrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code int
	}{
		{"unprocessable", http.StatusUnprocessableEntity},
		{"bad gateway", http.StatusBadGateway},
		{"ok", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			rw := NewResponseWriter(w, true)
			rw.WriteHeader(tt.code)

			require.Equal(t, tt.code, rw.Status())
			require.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestResponseWriter_ImplicitWrite(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)

	n, err := rw.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, int64(5), rw.Size())
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, rw.Written())
	require.Same(t, http.ResponseWriter(w), rw.Unwrap())
}
