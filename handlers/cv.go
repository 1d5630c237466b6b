package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/folio"
	"github.com/dmitrymomot/folio/middlewares"
	"github.com/dmitrymomot/folio/pkg/storage"
)

// CVConfig locates the CV in object storage.
type CVConfig struct {
	Key      string        `env:"CV_KEY" envDefault:"cv/cv.pdf"`
	Filename string        `env:"CV_FILENAME" envDefault:"cv.pdf"`
	Expiry   time.Duration `env:"CV_URL_EXPIRY" envDefault:"5m"`
}

// CV redirects to a short-lived download link for the CV.
type CV struct {
	store storage.Storage
	cfg   CVConfig
}

// NewCV creates the CV handler. A nil store answers 503.
func NewCV(store storage.Storage, cfg CVConfig) *CV {
	return &CV{store: store, cfg: cfg}
}

func (h *CV) Routes(r folio.Router) {
	r.GET("/cv/download", h.download, middlewares.Timeout(DefaultUpstreamTimeout))
}

func (h *CV) download(c folio.Context) error {
	if h.store == nil {
		return folio.ErrServiceUnavailable(c.T("common.errors.cv_disabled"),
			folio.WithErrorCode("storage_disabled"))
	}

	if _, err := h.store.Head(c, h.cfg.Key); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return folio.ErrNotFound(c.T("common.errors.cv_missing"),
				folio.WithErrorCode("cv_missing"), folio.WithError(err))
		}
		return folio.ErrBadGateway(c.T("common.errors.cv_missing"),
			folio.WithErrorCode("storage_failed"), folio.WithError(err))
	}

	url, err := h.store.URL(c, h.cfg.Key,
		storage.WithDownload(h.cfg.Filename),
		storage.WithExpiry(h.cfg.Expiry),
	)
	if err != nil {
		return folio.ErrBadGateway(c.T("common.errors.cv_missing"),
			folio.WithErrorCode("storage_failed"), folio.WithError(err))
	}

	return c.Redirect(http.StatusFound, url)
}
