// Package i18n provides translations for the site UI and the contact result
// messages.
//
// Translations are YAML files laid out as {lang}/{namespace}.yaml, loaded
// once at startup into an immutable [I18n]. Lookups fall back from the exact
// language to its base language and then to the default language; a key
// that is missing everywhere is returned as is.
//
// Visitor languages are resolved from Accept-Language with the
// golang.org/x/text/language matcher:
//
//	i, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithLanguages("en-GB", "pt-BR", "pt-PT", "ja"),
//		i18n.WithYAMLDir(locales.FS),
//	)
//	lang := i.Match(r.Header.Get("Accept-Language"))
//	tr := i18n.NewTranslator(i, lang, nil)
//	tr.T("contact.result.send_failed", i18n.M{"owner": "me@example.com"})
package i18n
