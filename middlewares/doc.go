// Package middlewares provides the HTTP middleware the portfolio server runs.
//
// # Request ID
//
// RequestID reuses an upstream X-Request-ID or X-Correlation-ID header, or
// generates a UUIDv7. Pair it with RequestIDExtractor so every log line
// carries request_id:
//
//	log := logger.New(cfg, middlewares.RequestIDExtractor())
//	app := folio.New(
//	    folio.WithLogger(log),
//	    folio.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover converts panics into *PanicError so the app's ErrorHandler renders
// them like any other failure.
//
// # Timeout
//
// Timeout attaches a deadline to a single route and returns *TimeoutError
// when it passes:
//
//	r.GET("/projects", h.list, middlewares.Timeout(10*time.Second))
//
// # Preferences and Locale
//
// Preferences loads the visitor's signed settings cookie. Locale then picks
// the request language from the "lang" query parameter, the saved locale,
// or Accept-Language, in that order, and installs a translator for
// Context.T:
//
//	folio.WithMiddleware(
//	    middlewares.Preferences(store),
//	    middlewares.Locale(translations),
//	)
package middlewares
