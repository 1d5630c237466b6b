package middlewares

import (
	"github.com/dmitrymomot/folio/internal"
	"github.com/dmitrymomot/folio/pkg/preferences"
)

// Preferences loads the visitor's saved settings onto the request context.
// Read them with preferences.FromContext. Missing or tampered cookies
// yield the defaults.
func Preferences(store *preferences.Store) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			settings, _ := store.Load(c)
			c.SetContext(preferences.WithSettings(c.Request().Context(), settings))
			return next(c)
		}
	}
}
