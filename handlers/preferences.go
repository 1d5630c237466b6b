package handlers

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/folio"
	"github.com/dmitrymomot/folio/pkg/preferences"
)

const maxPreferencesBody = 4 << 10

// Preferences reads and updates the visitor's settings cookie.
type Preferences struct {
	store *preferences.Store
}

// NewPreferences creates the preferences handler.
func NewPreferences(store *preferences.Store) *Preferences {
	return &Preferences{store: store}
}

func (h *Preferences) Routes(r folio.Router) {
	r.GET("/api/preferences", h.show)
	r.PUT("/api/preferences", h.update)
}

type preferencesResponse struct {
	preferences.Settings
	// Language is the language in effect for this request.
	Language string `json:"language"`
}

func (h *Preferences) show(c folio.Context) error {
	settings, ok := preferences.FromContext(c)
	if !ok {
		settings, _ = h.store.Load(c)
	}
	return c.JSON(http.StatusOK, preferencesResponse{Settings: settings, Language: language(c, settings)})
}

func (h *Preferences) update(c folio.Context) error {
	var patch preferences.Patch
	if c.IsJSON() {
		if err := c.BindJSON(&patch, maxPreferencesBody); err != nil {
			code := http.StatusBadRequest
			if errors.Is(err, folio.ErrBodyTooLarge) {
				code = http.StatusRequestEntityTooLarge
			}
			return c.Error(code, "invalid preferences", folio.WithErrorCode("bad_request"), folio.WithError(err))
		}
	} else {
		patch = preferences.Patch{
			Theme:      c.Form("theme"),
			Locale:     c.Form("locale"),
			Navigation: c.Form("navigation"),
		}
	}

	current, ok := preferences.FromContext(c)
	if !ok {
		current, _ = h.store.Load(c)
	}

	saved, err := h.store.Save(c, patch.Apply(current))
	if err != nil {
		return c.Error(http.StatusInternalServerError, "could not save preferences",
			folio.WithErrorCode("save_failed"), folio.WithError(err))
	}

	if c.IsHTMX() {
		// The whole page depends on these settings.
		c.SetHeader("HX-Refresh", "true")
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, preferencesResponse{Settings: saved, Language: language(c, saved)})
}

// language reports the saved locale, or the one the Locale middleware
// picked when none was saved.
func language(c folio.Context, s preferences.Settings) string {
	if s.Locale != "" {
		return s.Locale
	}
	return c.Language()
}
