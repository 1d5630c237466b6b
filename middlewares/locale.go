package middlewares

import (
	"github.com/dmitrymomot/folio/internal"
	"github.com/dmitrymomot/folio/pkg/i18n"
	"github.com/dmitrymomot/folio/pkg/preferences"
)

// LocaleOption configures the Locale middleware.
type LocaleOption func(*localeConfig)

type localeConfig struct {
	extractor    internal.Extractor
	extractorSet bool
}

// WithLocaleExtractor replaces the default source chain.
func WithLocaleExtractor(ext internal.Extractor) LocaleOption {
	return func(cfg *localeConfig) {
		cfg.extractor = ext
		cfg.extractorSet = true
	}
}

// FromPreferences reads the locale saved in the visitor's settings.
// It requires the Preferences middleware to run first.
func FromPreferences() internal.ExtractorSource {
	return func(c internal.Context) (string, bool) {
		s, ok := preferences.FromContext(c.Request().Context())
		if !ok || s.Locale == "" {
			return "", false
		}
		return s.Locale, true
	}
}

// FromAcceptLanguage matches the Accept-Language header against svc's
// languages.
func FromAcceptLanguage(svc *i18n.I18n) internal.ExtractorSource {
	return func(c internal.Context) (string, bool) {
		header := c.Header("Accept-Language")
		if header == "" {
			return "", false
		}
		return svc.Match(header), true
	}
}

// Locale resolves the request language and stores a translator for
// Context.T. The default chain is the "lang" query parameter, saved
// preferences, then Accept-Language. Unsupported values fall through to the
// default language.
func Locale(svc *i18n.I18n, opts ...LocaleOption) internal.Middleware {
	cfg := &localeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.extractorSet {
		cfg.extractor = internal.NewExtractor(
			onlySupported(svc, internal.FromQuery("lang")),
			onlySupported(svc, FromPreferences()),
			FromAcceptLanguage(svc),
		)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			lang := svc.DefaultLanguage()
			if v, ok := cfg.extractor.Extract(c); ok {
				if supported := svc.Supported(v); supported != "" {
					lang = supported
				}
			}

			c.Set(internal.TranslatorKey{}, i18n.NewTranslator(svc, lang, i18n.FormatForLanguage(lang)))
			c.Set(internal.LanguageKey{}, lang)

			return next(c)
		}
	}
}

// onlySupported skips values svc cannot serve so the next source gets a turn.
func onlySupported(svc *i18n.I18n, src internal.ExtractorSource) internal.ExtractorSource {
	return func(c internal.Context) (string, bool) {
		v, ok := src(c)
		if !ok {
			return "", false
		}
		v = svc.Supported(v)
		return v, v != ""
	}
}
