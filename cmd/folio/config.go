package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/folio/handlers"
	"github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/geo"
	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/mailer/filesender"
	"github.com/dmitrymomot/folio/pkg/mailer/resend"
	"github.com/dmitrymomot/folio/pkg/projects"
	"github.com/dmitrymomot/folio/pkg/redis"
	"github.com/dmitrymomot/folio/pkg/storage"
)

// appConfig is the HTTP server's own configuration.
type appConfig struct {
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	BaseURL         string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	CookieSecret    string        `env:"COOKIE_SECRET,required,notEmpty"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Secure reports whether cookies should carry the Secure attribute.
func (c appConfig) Secure() bool {
	return strings.HasPrefix(c.BaseURL, "https://")
}

// mailConfig picks the delivery backend: Resend when an API key is set,
// otherwise an outbox directory for local development.
type mailConfig struct {
	Resend resend.Config
	Outbox filesender.Config
}

// serveConfig is everything `folio serve` needs.
type serveConfig struct {
	App      appConfig
	Log      logger.Config
	Contact  contact.Config
	Mail     mailConfig
	Redis    redis.Config
	Storage  storage.Config
	CV       handlers.CVConfig
	Projects projects.Config
	Geo      geo.Config
}

// contactConfig is what `folio contact send` needs.
type contactConfig struct {
	Log     logger.Config
	Contact contact.Config
	Mail    mailConfig
}

// cvConfig is what `folio cv upload` needs.
type cvConfig struct {
	Log     logger.Config
	Storage storage.Config
	CV      handlers.CVConfig
}

// loadConfig reads .env files, when present, then parses T from the
// environment. Variables already set win over the files.
func loadConfig[T any](files ...string) (T, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var zero T
		return zero, fmt.Errorf("load env file: %w", err)
	}
	cfg, err := env.ParseAs[T]()
	if err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
