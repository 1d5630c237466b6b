package i18n

import "strings"

// Translator binds an I18n instance to one request's language.
//
// Keys are written as "namespace.path", matching the YAML layout:
// T("contact.result.sent") reads result.sent from {lang}/contact.yaml.
type Translator struct {
	i18n     *I18n
	format   *LocaleFormat
	language string
}

// NewTranslator creates a Translator. An empty language means the default;
// a nil format means FormatForLanguage(language).
func NewTranslator(i18n *I18n, language string, format *LocaleFormat) *Translator {
	if i18n == nil {
		panic("i18n: service is not provided")
	}
	if language == "" {
		language = i18n.DefaultLanguage()
	}
	if format == nil {
		format = FormatForLanguage(language)
	}
	return &Translator{i18n: i18n, language: language, format: format}
}

// T translates "namespace.key". Keys without a namespace are returned unchanged.
func (t *Translator) T(key string, placeholders ...M) string {
	namespace, rest, ok := strings.Cut(key, ".")
	if !ok {
		return key
	}
	out := t.i18n.T(t.language, namespace, rest, placeholders...)
	if out == rest {
		return key
	}
	return out
}

// Has reports whether "namespace.key" has a translation.
func (t *Translator) Has(key string) bool {
	namespace, rest, ok := strings.Cut(key, ".")
	return ok && t.i18n.Has(t.language, namespace, rest)
}

func (t *Translator) Language() string { return t.language }

// Format returns the number and date layouts for the translator's language.
func (t *Translator) Format() *LocaleFormat { return t.format }
