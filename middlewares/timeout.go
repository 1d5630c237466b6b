package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/folio/internal"
)

// DefaultTimeout applies when Timeout is given a non-positive duration.
const DefaultTimeout = 30 * time.Second

// Timeout bounds a handler. The deadline is attached to the request context,
// and a *TimeoutError is returned when it passes before the handler finishes.
//
// Register it per route on reads that call upstream services. The contact
// submission must not use it: the notification send outlives the client.
//
// The handler goroutine keeps running after the deadline; handlers should
// watch ctx.Done() on long calls.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()
			c.SetContext(ctx)

			done := make(chan error, 1)
			go func() {
				done <- next(c)
			}()

			var err error
			select {
			case err = <-done:
				if err == nil || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
					return err
				}
			case <-ctx.Done():
				err = ctx.Err()
			}

			if errors.Is(err, context.DeadlineExceeded) {
				c.LogWarn("request timeout", "timeout", timeout.String())
				return &TimeoutError{Duration: timeout}
			}
			return err
		}
	}
}
