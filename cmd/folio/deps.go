package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/folio/middlewares"
	"github.com/dmitrymomot/folio/pkg/cache"
	"github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/mailer"
	"github.com/dmitrymomot/folio/pkg/mailer/filesender"
	"github.com/dmitrymomot/folio/pkg/mailer/resend"
	"github.com/dmitrymomot/folio/pkg/redis"
	"github.com/dmitrymomot/folio/pkg/storage"
)

func newLogger(cfg logger.Config) *slog.Logger {
	return logger.New(cfg, middlewares.RequestIDExtractor(), contact.CorrelationExtractor)
}

// newSender returns Resend when configured, otherwise the outbox sender.
func newSender(cfg mailConfig, log *slog.Logger) (mailer.Sender, error) {
	if cfg.Resend.APIKey == "" {
		log.Warn("RESEND_API_KEY not set, writing notifications to the outbox",
			slog.String("dir", cfg.Outbox.Dir))
		return filesender.New(cfg.Outbox, filesender.WithLogger(log)), nil
	}
	s, err := resend.New(cfg.Resend, resend.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("resend: %w", err)
	}
	return s, nil
}

// newContactService builds the submission pipeline shared by the web form
// and `folio contact send`.
func newContactService(cfg contact.Config, mail mailConfig, log *slog.Logger) (*contact.Service, error) {
	sender, err := newSender(mail, log)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("contact timezone %q: %w", cfg.Timezone, err)
	}

	notifier := contact.NewEmailNotifier(sender, cfg.Destination,
		contact.WithLocation(loc),
		contact.WithNotifierLogger(log),
	)
	return contact.NewService(notifier, cfg.Owner(), contact.WithLogger(log)), nil
}

// newStorage returns nil when no bucket is configured.
func newStorage(cfg storage.Config) (storage.Storage, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	s, err := storage.New(cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// newCache uses Redis when a client is given, otherwise process memory.
func newCache[V any](client goredis.UniversalClient, prefix string) cache.Cache[V] {
	if client == nil {
		return cache.NewMemory[V](cache.WithCleanupInterval(time.Minute))
	}
	return cache.NewRedis[V](client, cache.JSON[V]{}, cache.WithPrefix(prefix))
}

// openRedis returns a nil client when REDIS_URL is unset.
func openRedis(ctx context.Context, cfg redis.Config, log *slog.Logger) (goredis.UniversalClient, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	return redis.Open(ctx, cfg, logger.Component(log, "redis"))
}
