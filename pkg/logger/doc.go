// Package logger builds the process-wide slog.Logger.
//
// Records are written as JSON (or text) to stdout. Context extractors add
// request-scoped attributes such as request_id on every call, and when a
// Sentry DSN is configured warnings and errors are mirrored to Sentry with
// errors promoted to issues.
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//	contactLog := logger.Component(log, "contact")
//	contactLog.InfoContext(ctx, "submission delivered", "correlation_id", id)
package logger
