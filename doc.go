// Package folio serves a personal portfolio site whose one write path is the
// contact form: a visitor submits name, email, subject and message, and the
// owner receives a formatted notification email.
//
// The package itself is a thin HTTP layer over chi. Feature code lives in
// pkg/ (contact, mailer, geo, projects, preferences, ...) and is wired to
// routes by the handlers package.
//
// # Quick Start
//
//	app := folio.New(
//	    folio.WithLogger(log),
//	    folio.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.Preferences(prefs),
//	        middlewares.Locale(translations),
//	    ),
//	    folio.WithHandlers(handlers.NewContact(svc, site)),
//	    folio.WithErrorHandler(handlers.ErrorHandler(site)),
//	)
//
//	if err := app.Run(":8080"); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// Handlers implement [Handler] to declare routes:
//
//	func (h *Contact) Routes(r folio.Router) {
//	    r.GET("/contact", h.form)
//	    r.POST("/contact", h.submit)
//	}
//
// # Middleware
//
//	func Timing(log *slog.Logger) folio.Middleware {
//	    return func(next folio.HandlerFunc) folio.HandlerFunc {
//	        return func(c folio.Context) error {
//	            start := time.Now()
//	            err := next(c)
//	            log.Info("request", "path", c.Request().URL.Path, "duration", time.Since(start))
//	            return err
//	        }
//	    }
//	}
//
// # Shutdown
//
// Run handles SIGINT/SIGTERM. Register cleanup with [ShutdownHook]:
//
//	app.Run(":8080", folio.ShutdownHook(redis.Shutdown(client)))
package folio
