// Package locales embeds the site translations, laid out as
// {lang}/{namespace}.yaml.
package locales

import (
	"embed"
	"io/fs"

	"github.com/dmitrymomot/folio/pkg/i18n"
)

//go:embed */*.yaml
var files embed.FS

// Default is the fallback language.
const Default = "en"

// Supported lists every shipped language, default first.
var Supported = []string{"en", "en-GB", "pt-BR", "pt-PT", "ja"}

// FS returns the embedded translation files.
func FS() fs.FS {
	return files
}

// New loads the embedded translations.
func New(opts ...i18n.Option) (*i18n.I18n, error) {
	base := []i18n.Option{
		i18n.WithDefaultLanguage(Default),
		i18n.WithLanguages(Supported...),
		i18n.WithYAMLDir(files),
	}
	return i18n.New(append(base, opts...)...)
}
