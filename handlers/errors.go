package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/folio"
	"github.com/dmitrymomot/folio/middlewares"
	"github.com/dmitrymomot/folio/views"
)

type errorBody struct {
	Code      string `json:"code,omitempty"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// ErrorHandler renders handler errors. *folio.HTTPError keeps its status and
// message; panics, timeouts and anything else are mapped to a generic,
// localized message so internals never reach the client.
func ErrorHandler(site Site) folio.ErrorHandler {
	return func(c folio.Context, err error) error {
		status, body := classify(c, err)
		body.RequestID = middlewares.GetRequestID(c)

		if status >= http.StatusInternalServerError {
			c.LogError("request failed", slog.Int("status", status), slog.Any("error", err))
		} else {
			c.LogDebug("request rejected", slog.Int("status", status), slog.Any("error", err))
		}

		if c.WantsJSON() || c.IsJSON() || strings.HasPrefix(c.Request().URL.Path, "/api/") {
			return c.JSON(status, errorResponse{Error: body})
		}

		p := site.page(c, "common.site.name", c.Request().URL.Path)
		p.Title = http.StatusText(status)
		return c.RenderPartial(status,
			views.ErrorPage(p, status, body.Message),
			views.ErrorAlert(status, body.Message),
		)
	}
}

func classify(c folio.Context, err error) (int, errorBody) {
	if httpErr := folio.AsHTTPError(err); httpErr != nil {
		msg := httpErr.Message
		if msg == "" {
			msg = httpErr.StatusText()
		}
		return httpErr.StatusCode(), errorBody{Code: httpErr.ErrorCode, Message: msg}
	}
	if middlewares.IsTimeoutError(err) {
		return http.StatusGatewayTimeout, errorBody{Code: "timeout", Message: c.T("common.errors.timeout")}
	}
	if middlewares.IsPanicError(err) {
		return http.StatusInternalServerError, errorBody{Code: "panic", Message: c.T("common.errors.internal")}
	}
	return http.StatusInternalServerError, errorBody{Code: "internal", Message: c.T("common.errors.internal")}
}

// NotFound is the 404 handler.
func NotFound(c folio.Context) error {
	return c.Error(http.StatusNotFound, c.T("common.errors.not_found"), folio.WithErrorCode("not_found"))
}

// MethodNotAllowed is the 405 handler.
func MethodNotAllowed(c folio.Context) error {
	return c.Error(http.StatusMethodNotAllowed, c.T("common.errors.method_not_allowed"),
		folio.WithErrorCode("method_not_allowed"))
}
