package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/folio"
	"github.com/dmitrymomot/folio/handlers"
	"github.com/dmitrymomot/folio/locales"
	"github.com/dmitrymomot/folio/middlewares"
	"github.com/dmitrymomot/folio/pkg/cookie"
	"github.com/dmitrymomot/folio/pkg/geo"
	"github.com/dmitrymomot/folio/pkg/i18n"
	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/preferences"
	"github.com/dmitrymomot/folio/pkg/projects"
	"github.com/dmitrymomot/folio/pkg/redis"
)

func runServe(ctx context.Context, envFiles []string) error {
	cfg, err := loadConfig[serveConfig](envFiles...)
	if err != nil {
		return err
	}
	if err := cookie.CheckSecret(cfg.App.CookieSecret); err != nil {
		return err
	}

	log := newLogger(cfg.Log)

	translations, err := locales.New(i18n.WithMissingKeyHandler(func(lang, namespace, key string) {
		log.Warn("missing translation",
			slog.String("lang", lang),
			slog.String("namespace", namespace),
			slog.String("key", key),
		)
	}))
	if err != nil {
		return err
	}

	contactSvc, err := newContactService(cfg.Contact, cfg.Mail, log)
	if err != nil {
		return err
	}

	rdb, err := openRedis(ctx, cfg.Redis, log)
	if err != nil {
		return err
	}

	repoCache := newCache[[]projects.Repo](rdb, "folio")
	geoCache := newCache[geo.Location](rdb, "folio")

	ghClient, err := projects.NewClient(cfg.Projects, nil)
	if err != nil {
		return err
	}
	repos := projects.NewService(ghClient, repoCache, cfg.Projects.User,
		projects.WithTTL(cfg.Projects.CacheTTL),
		projects.WithLogger(log),
	)
	refresher, err := projects.NewRefresher(repos, cfg.Projects.Refresh, log)
	if err != nil {
		return err
	}

	locator := geo.NewService(geo.NewClient(cfg.Geo, nil), geoCache,
		geo.WithTTL(cfg.Geo.CacheTTL),
		geo.WithLogger(log),
	)

	cv, err := newStorage(cfg.Storage)
	if err != nil {
		return err
	}
	if cv == nil {
		log.Info("S3_BUCKET not set, CV downloads are disabled")
	}

	prefs := preferences.NewStore(translations)
	site := handlers.Site{Languages: translations.Languages()}

	health := []folio.HealthOption{}
	if rdb != nil {
		health = append(health, folio.WithReadinessCheck("redis", redis.Healthcheck(rdb)))
	}

	app := folio.New(
		folio.WithLogger(log),
		folio.WithCookieOptions(
			cookie.WithSecret(cfg.App.CookieSecret),
			cookie.WithSecure(cfg.App.Secure()),
			cookie.WithSameSite(http.SameSiteLaxMode),
		),
		folio.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.Preferences(prefs),
			middlewares.Locale(translations),
		),
		folio.WithHandlers(
			handlers.NewHome(site),
			handlers.NewContact(contactSvc, site),
			handlers.NewProjects(repos, site, cfg.Projects.Timeout),
			handlers.NewLocation(locator, prefs, cfg.Geo.Timeout),
			handlers.NewPreferences(prefs),
			handlers.NewCV(cv, cfg.CV),
		),
		folio.WithErrorHandler(handlers.ErrorHandler(site)),
		folio.WithNotFoundHandler(handlers.NotFound),
		folio.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		folio.WithHealthChecks(health...),
	)

	log.Info("starting folio",
		slog.String("address", cfg.App.Address),
		slog.String("base_url", cfg.App.BaseURL),
		slog.Bool("redis", rdb != nil),
	)

	return app.Run(cfg.App.Address,
		folio.WithContext(ctx),
		folio.Logger(logger.Component(log, "server")),
		folio.ShutdownTimeout(cfg.App.ShutdownTimeout),
		folio.StartupHook(refresher.Start),
		folio.ShutdownHook(refresher.Stop),
		folio.ShutdownHook(closer(repoCache.Close)),
		folio.ShutdownHook(closer(geoCache.Close)),
		folio.ShutdownHook(redis.Shutdown(rdb)),
	)
}

func closer(fn func() error) func(context.Context) error {
	return func(context.Context) error { return fn() }
}
