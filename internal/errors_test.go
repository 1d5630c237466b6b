package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/internal"
)

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct", func(t *testing.T) {
		t.Parallel()
		err := internal.ErrUnprocessable("invalid email", internal.WithErrorCode("invalid_email"))
		got := internal.AsHTTPError(err)
		require.NotNil(t, got)
		require.Equal(t, http.StatusUnprocessableEntity, got.StatusCode())
		require.Equal(t, "invalid_email", got.ErrorCode)
	})

	t.Run("wrapped", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", internal.ErrBadGateway("upstream failed"))
		require.True(t, internal.IsHTTPError(err))
		require.Equal(t, http.StatusBadGateway, internal.AsHTTPError(err).Code)
	})

	t.Run("unrelated and nil", func(t *testing.T) {
		t.Parallel()
		require.False(t, internal.IsHTTPError(errors.New("boom")))
		require.Nil(t, internal.AsHTTPError(nil))
	})
}

func TestHTTPError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("provider said no")
	err := internal.ErrInternal("something went wrong", internal.WithError(cause), internal.WithRequestID("req-1"))

	require.ErrorIs(t, err, cause)
	require.Equal(t, "something went wrong", err.Error())
	require.Equal(t, "req-1", err.RequestID)
	require.Equal(t, "Internal Server Error", err.StatusText())
}
