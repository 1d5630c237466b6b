package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/folio"
	"github.com/dmitrymomot/folio/middlewares"
	"github.com/dmitrymomot/folio/pkg/geo"
	"github.com/dmitrymomot/folio/pkg/preferences"
)

// Locator resolves a client IP. *geo.Service satisfies it.
type Locator interface {
	Locate(ctx context.Context, ip string) (geo.Location, error)
}

// Location serves the visitor's approximate location and suggests a
// cultural theme from it.
type Location struct {
	locator Locator
	store   *preferences.Store
	timeout time.Duration
}

// NewLocation creates the location handler. A non-positive timeout means
// DefaultUpstreamTimeout.
func NewLocation(locator Locator, store *preferences.Store, timeout time.Duration) *Location {
	if timeout <= 0 {
		timeout = DefaultUpstreamTimeout
	}
	return &Location{locator: locator, store: store, timeout: timeout}
}

func (h *Location) Routes(r folio.Router) {
	r.GET("/api/location", h.show, middlewares.Timeout(h.timeout))
}

type locationResponse struct {
	Location geo.Location `json:"location"`
	Theme    geo.Theme    `json:"theme"`
	// Applied is true when the suggested theme was saved to preferences.
	Applied bool `json:"applied"`
}

func (h *Location) show(c folio.Context) error {
	ip := c.RealIP()
	loc, err := h.locator.Locate(c, ip)
	switch {
	case errors.Is(err, geo.ErrPrivateIP), errors.Is(err, geo.ErrInvalidIP):
		return c.Error(http.StatusUnprocessableEntity, "location unavailable for this address",
			folio.WithErrorCode("private_ip"), folio.WithError(err))
	case err != nil:
		return c.Error(http.StatusBadGateway, "location lookup failed",
			folio.WithErrorCode("lookup_failed"), folio.WithError(err))
	}

	theme := loc.Theme()
	settings, ok := preferences.FromContext(c)
	if !ok {
		settings, _ = h.store.Load(c)
	}

	applied := false
	if settings.SuggestTheme(theme) {
		if _, err := h.store.Save(c, settings); err != nil {
			c.LogWarn("save suggested theme", slog.Any("error", err))
		} else {
			applied = true
		}
	}

	return c.JSON(http.StatusOK, locationResponse{Location: loc, Theme: theme, Applied: applied})
}
