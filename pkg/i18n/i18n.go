package i18n

import (
	"fmt"
	"maps"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLang is used when no default language is configured.
const DefaultLang = "en"

// M holds placeholder values for a translation.
type M map[string]any

// I18n stores flattened translations and resolves visitor languages.
// It is immutable after New and safe for concurrent use.
type I18n struct {
	// "lang:namespace:key.path" -> text
	translations map[string]string

	missingKeyHandler func(lang, namespace, key string)

	defaultLang string
	languages   []string
	matcher     language.Matcher
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates an I18n instance. Languages are canonicalised ("pt-br" -> "pt-BR")
// and the default language is always first.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	langs := make([]string, 0, len(i.languages)+1)
	langs = append(langs, i.defaultLang)
	for _, l := range i.languages {
		if l != i.defaultLang && !contains(langs, l) {
			langs = append(langs, l)
		}
	}
	i.languages = langs

	tags := make([]language.Tag, len(langs))
	for idx, l := range langs {
		tags[idx] = language.Make(l)
	}
	i.matcher = language.NewMatcher(tags)

	return i, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		tag, err := canonical(lang)
		if err != nil {
			return err
		}
		i.defaultLang = tag
		return nil
	}
}

// WithLanguages declares the supported languages, in matching priority order.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		for _, l := range langs {
			tag, err := canonical(l)
			if err != nil {
				return err
			}
			i.languages = append(i.languages, tag)
		}
		return nil
	}
}

// WithTranslations adds a nested translation map for one language and namespace.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		tag, err := canonical(lang)
		if err != nil {
			return err
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		i.add(tag, namespace, translations)
		return nil
	}
}

// WithMissingKeyHandler is called when a key is missing in every fallback language.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// T translates key. Lookup order: exact language, base language ("pt" for
// "pt-BR"), default language. Returns key when nothing matches.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	for _, candidate := range i.fallbackChain(lang) {
		if text, ok := i.translations[buildKey(candidate, namespace, key)]; ok {
			return replacePlaceholdersWithMerge(text, placeholders...)
		}
	}

	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}
	return key
}

// Has reports whether key resolves in lang or any fallback.
func (i *I18n) Has(lang, namespace, key string) bool {
	for _, candidate := range i.fallbackChain(lang) {
		if _, ok := i.translations[buildKey(candidate, namespace, key)]; ok {
			return true
		}
	}
	return false
}

// Languages returns the supported languages, default first.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// Supported returns the canonical form of lang if it is supported, or "".
func (i *I18n) Supported(lang string) string {
	tag, err := canonical(lang)
	if err != nil {
		return ""
	}
	if contains(i.languages, tag) {
		return tag
	}
	return ""
}

func (i *I18n) fallbackChain(lang string) []string {
	chain := []string{lang}
	if base := baseLanguage(lang); base != lang {
		chain = append(chain, base)
	}
	if lang != i.defaultLang && baseLanguage(lang) != i.defaultLang {
		chain = append(chain, i.defaultLang)
	}
	return chain
}

func (i *I18n) add(lang, namespace string, translations map[string]any) {
	for key, value := range flattenTranslations(translations, "") {
		i.translations[buildKey(lang, namespace, key)] = value
	}
}

func canonical(lang string) (string, error) {
	if lang == "" {
		return "", ErrEmptyLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTag, lang)
	}
	return tag.String(), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTranslations(v, fullKey))
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}

// baseLanguage strips the region: "pt-BR" -> "pt".
func baseLanguage(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}
