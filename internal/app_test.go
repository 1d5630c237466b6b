package internal_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/internal"
)

type pingHandler struct{}

func (pingHandler) Routes(r internal.Router) {
	r.GET("/ping", func(c internal.Context) error {
		return c.String(http.StatusOK, "pong")
	})
	r.GET("/fail", func(c internal.Context) error {
		return c.Error(http.StatusBadGateway, "upstream down")
	})
	r.Route("/api", func(r internal.Router) {
		r.GET("/value", func(c internal.Context) error {
			return c.JSON(http.StatusOK, map[string]string{"v": internal.ContextValue[string](c, ctxKey{})})
		}, setValue("inner"))
	})
}

type ctxKey struct{}

func setValue(v string) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			c.Set(ctxKey{}, v)
			return next(c)
		}
	}
}

func newTestApp(opts ...internal.Option) *internal.App {
	base := []internal.Option{
		internal.WithHandlers(pingHandler{}),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			if httpErr := internal.AsHTTPError(err); httpErr != nil {
				return c.String(httpErr.StatusCode(), httpErr.Message)
			}
			return c.String(http.StatusInternalServerError, "internal")
		}),
	}
	return internal.New(append(base, opts...)...)
}

func TestApp_Routes(t *testing.T) {
	t.Parallel()

	app := newTestApp()

	t.Run("plain handler", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", rec.Body.String())
	})

	t.Run("returned error goes to error handler", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "upstream down", rec.Body.String())
	})

	t.Run("route middleware", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/value", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"v":"inner"}`, rec.Body.String())
	})

	t.Run("get routes answer head", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/ping", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestApp_GlobalMiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	record := func(name string) internal.Middleware {
		return func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}

	app := newTestApp(internal.WithMiddleware(record("first"), record("second")))
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"first", "second"}, order)
}

func TestApp_MiddlewareError(t *testing.T) {
	t.Parallel()

	deny := func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			return internal.ErrBadRequest("denied")
		}
	}

	app := newTestApp(internal.WithMiddleware(deny))
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "denied", rec.Body.String())
}

func TestApp_NotFound(t *testing.T) {
	t.Parallel()

	app := newTestApp(internal.WithNotFoundHandler(func(c internal.Context) error {
		return c.String(http.StatusNotFound, "nothing here")
	}))

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "nothing here", rec.Body.String())
}

func TestApp_HTMXErrorKeepsOK(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "upstream down", rec.Body.String())
}

func TestApp_HealthChecks(t *testing.T) {
	t.Parallel()

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(internal.WithHealthChecks())
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("readiness failing check", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(internal.WithHealthChecks(
			internal.WithReadinessCheck("ok", func(context.Context) error { return nil }),
			internal.WithReadinessCheck("redis", func(context.Context) error { return errors.New("connection refused") }),
		))

		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `"status":"unhealthy"`)
		assert.True(t, strings.Contains(body, "connection refused"))
	})

	t.Run("custom path", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(internal.WithHealthChecks(internal.WithReadinessPath("/ready")))
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestContext_RealIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded for", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.2:1234", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.4"}, "10.0.0.2:1234", "198.51.100.4"},
		{"remote addr", nil, "192.0.2.9:5555", "192.0.2.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			app := internal.New(internal.WithHandlers(handlerFunc(func(r internal.Router) {
				r.GET("/ip", func(c internal.Context) error {
					got = c.RealIP()
					return c.NoContent(http.StatusNoContent)
				})
			})))

			req := httptest.NewRequest(http.MethodGet, "/ip", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			app.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

type handlerFunc func(r internal.Router)

func (f handlerFunc) Routes(r internal.Router) { f(r) }
