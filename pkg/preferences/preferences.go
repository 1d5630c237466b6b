package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/dmitrymomot/folio/pkg/geo"
)

// DefaultCookieName holds the signed settings.
const DefaultCookieName = "prefs"

// DefaultMaxAge keeps the cookie for a year.
const DefaultMaxAge = 365 * 24 * 60 * 60

// ErrInvalidSettings is returned for a settings payload that cannot be decoded.
var ErrInvalidSettings = errors.New("preferences: invalid settings")

// Navigation is the layout of the site menu.
type Navigation string

const (
	NavigationTop  Navigation = "top"
	NavigationSide Navigation = "side"
)

// Settings are a visitor's saved choices. An empty Locale means none was
// picked and the request language comes from Accept-Language.
type Settings struct {
	Theme      geo.Theme  `json:"theme"`
	Locale     string     `json:"locale"`
	Navigation Navigation `json:"navigation"`
}

// SuggestTheme applies t unless the visitor already picked a non-default
// theme. It reports whether the settings changed.
func (s *Settings) SuggestTheme(t geo.Theme) bool {
	if s.Theme != "" && s.Theme != geo.ThemeDefault {
		return false
	}
	if s.Theme == t {
		return false
	}
	s.Theme = t
	return true
}

// Locales validates locale codes. *i18n.I18n satisfies it.
type Locales interface {
	Supported(lang string) string
	DefaultLanguage() string
}

// CookieJar reads and writes signed cookies. folio.Context satisfies it.
type CookieJar interface {
	CookieSigned(name string) (string, error)
	SetCookieSigned(name, value string, maxAge int) error
	DeleteCookie(name string)
}

// Store persists Settings in a signed cookie.
type Store struct {
	locales Locales
	name    string
	maxAge  int
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithCookieName overrides DefaultCookieName.
func WithCookieName(name string) StoreOption {
	return func(s *Store) {
		if name != "" {
			s.name = name
		}
	}
}

// WithMaxAge overrides DefaultMaxAge, in seconds.
func WithMaxAge(seconds int) StoreOption {
	return func(s *Store) {
		if seconds > 0 {
			s.maxAge = seconds
		}
	}
}

// NewStore creates a Store. With nil locales every Locale is dropped.
func NewStore(locales Locales, opts ...StoreOption) *Store {
	s := &Store{
		locales: locales,
		name:    DefaultCookieName,
		maxAge:  DefaultMaxAge,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Defaults returns the settings of a first-time visitor.
func (s *Store) Defaults() Settings {
	return s.Normalize(Settings{})
}

// Normalize replaces unknown values with defaults. An unsupported locale
// becomes the default language; an empty one stays empty.
func (s *Store) Normalize(in Settings) Settings {
	out := Settings{Theme: geo.ThemeDefault, Navigation: NavigationTop}

	if t, ok := geo.ParseTheme(string(in.Theme)); ok {
		out.Theme = t
	}
	switch Navigation(strings.ToLower(string(in.Navigation))) {
	case NavigationSide:
		out.Navigation = NavigationSide
	}
	if s.locales != nil && in.Locale != "" {
		out.Locale = s.locales.Supported(in.Locale)
		if out.Locale == "" {
			out.Locale = s.locales.DefaultLanguage()
		}
	}
	return out
}

// Load reads the visitor's settings. Missing, tampered or malformed
// cookies yield Defaults and found=false.
func (s *Store) Load(jar CookieJar) (settings Settings, found bool) {
	raw, err := jar.CookieSigned(s.name)
	if err != nil || raw == "" {
		return s.Defaults(), false
	}

	var in Settings
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return s.Defaults(), false
	}
	return s.Normalize(in), true
}

// Save normalizes and writes settings, returning what was stored.
func (s *Store) Save(jar CookieJar, settings Settings) (Settings, error) {
	settings = s.Normalize(settings)
	data, err := json.Marshal(settings)
	if err != nil {
		return settings, errors.Join(ErrInvalidSettings, err)
	}
	if err := jar.SetCookieSigned(s.name, string(data), s.maxAge); err != nil {
		return settings, err
	}
	return settings, nil
}

// Clear removes the cookie.
func (s *Store) Clear(jar CookieJar) {
	jar.DeleteCookie(s.name)
}

type ctxKey struct{}

// WithSettings stores settings on ctx.
func WithSettings(ctx context.Context, s Settings) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the settings put there by WithSettings.
func FromContext(ctx context.Context) (Settings, bool) {
	s, ok := ctx.Value(ctxKey{}).(Settings)
	return s, ok
}

// LocaleAuto in a Patch clears the saved locale.
const LocaleAuto = "auto"

// Patch is a partial update from a form or JSON body. Empty fields keep
// the current value.
type Patch struct {
	Theme      string `json:"theme" form:"theme"`
	Locale     string `json:"locale" form:"locale"`
	Navigation string `json:"navigation" form:"navigation"`
}

// Apply merges p into s.
func (p Patch) Apply(s Settings) Settings {
	if p.Theme != "" {
		s.Theme = geo.Theme(p.Theme)
	}
	switch p.Locale {
	case "":
	case LocaleAuto:
		s.Locale = ""
	default:
		s.Locale = p.Locale
	}
	if p.Navigation != "" {
		s.Navigation = Navigation(p.Navigation)
	}
	return s
}
