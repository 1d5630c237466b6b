// Package internal holds the HTTP application core behind the root folio package.
//
// Import "github.com/dmitrymomot/folio" instead; it re-exports the public API.
//
// # Core Types
//
//   - App: router, middleware chain, health probes and graceful shutdown
//   - Context: request/response access, i18n lookup, cookies and rendering helpers
//   - Router: route declaration with per-route middleware and grouping
//   - Handler: anything with a Routes(Router) method
//   - HandlerFunc, Middleware, ErrorHandler
//
// # Errors
//
// Handlers return errors instead of writing failure responses themselves.
// An *HTTPError carries the status code, a client-safe message and an
// application error code; the wrapped Err is for logs only:
//
//	return c.Error(http.StatusUnprocessableEntity, "invalid input",
//	    internal.WithErrorCode("invalid_email"),
//	    internal.WithError(err),
//	)
//
// # HTMX
//
// Responses to htmx requests are always sent with status 200 so the swap
// happens; ResponseWriter.Status keeps the status the handler intended.
//
// # Lifecycle
//
// App.Run listens on the address, runs startup hooks first, and on SIGINT,
// SIGTERM or base-context cancellation shuts the server down before running
// shutdown hooks in registration order. Hook errors are joined.
package internal
