package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/folio/pkg/geo"
	"github.com/dmitrymomot/folio/pkg/i18n"
	"github.com/dmitrymomot/folio/pkg/preferences"
)

// Translate looks up a "namespace.key" string. folio.Context.T satisfies it.
type Translate func(key string, placeholders ...i18n.M) string

// Page is what the layout needs from the request.
type Page struct {
	T          Translate
	Title      string
	Path       string
	Lang       string
	Format     *i18n.LocaleFormat // nil means FormatForLanguage(Lang)
	Theme      geo.Theme
	Navigation preferences.Navigation
	Languages  []string
}

func (p Page) format() *i18n.LocaleFormat {
	if p.Format == nil {
		return i18n.FormatForLanguage(p.Lang)
	}
	return p.Format
}

func (p Page) t(key string, placeholders ...i18n.M) string {
	if p.T == nil {
		return key
	}
	return p.T(key, placeholders...)
}

type navLink struct {
	path string
	key  string
}

var navLinks = []navLink{
	{path: "/", key: "common.nav.home"},
	{path: "/projects", key: "common.nav.projects"},
	{path: "/contact", key: "common.nav.contact"},
	{path: "/cv/download", key: "common.nav.cv"},
}

// Layout wraps body in the full HTML document.
func Layout(p Page, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		theme := p.Theme
		if theme == "" {
			theme = geo.ThemeDefault
		}
		nav := p.Navigation
		if nav == "" {
			nav = preferences.NavigationTop
		}
		lang := p.Lang
		if lang == "" {
			lang = i18n.DefaultLang
		}

		h.raw("<!DOCTYPE html><html")
		h.attr("lang", lang)
		h.raw("><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>")
		h.text(p.Title)
		h.raw(" | ")
		h.text(p.t("common.site.name"))
		h.raw("</title><link rel=\"stylesheet\" href=\"/static/site.css\"><script src=\"/static/htmx.min.js\" defer></script></head><body")
		h.attr("class", "theme-"+string(theme)+" nav-"+string(nav))
		h.raw("><header><nav>")
		for _, l := range navLinks {
			h.raw("<a")
			h.href(l.path)
			if l.path == p.Path {
				h.raw(` aria-current="page"`)
			}
			h.raw(">")
			h.text(p.t(l.key))
			h.raw("</a>")
		}
		h.raw("</nav>")
		h.render(ctx, preferencesForm(p, lang, theme, nav))
		h.raw("</header><main>")
		h.render(ctx, body)
		h.raw("</main><footer>")
		h.text(p.t("common.footer"))
		h.raw("</footer></body></html>")
	})
}

// preferencesForm saves each change through PUT /api/preferences; the
// handler answers htmx with HX-Refresh.
func preferencesForm(p Page, lang string, theme geo.Theme, nav preferences.Navigation) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<form class="preferences" hx-put="/api/preferences" hx-trigger="change" hx-swap="none">`)

		if len(p.Languages) > 1 {
			h.raw(`<label>`)
			h.text(p.t("common.preferences.language"))
			h.raw(` <select name="locale">`)
			for _, l := range p.Languages {
				option(h, l, p.t("common.languages."+l), l == lang)
			}
			h.raw(`</select></label>`)
		}

		h.raw(`<label>`)
		h.text(p.t("common.preferences.theme"))
		h.raw(` <select name="theme">`)
		for _, t := range geo.Themes() {
			option(h, string(t), p.t("common.themes."+string(t)), t == theme)
		}
		h.raw(`</select></label><label>`)
		h.text(p.t("common.preferences.navigation"))
		h.raw(` <select name="navigation">`)
		for _, n := range []preferences.Navigation{preferences.NavigationTop, preferences.NavigationSide} {
			option(h, string(n), p.t("common.navigation."+string(n)), n == nav)
		}
		h.raw(`</select></label></form>`)
	})
}

func option(h *htmlWriter, value, label string, selected bool) {
	h.raw("<option")
	h.attr("value", value)
	if selected {
		h.raw(" selected")
	}
	h.raw(">")
	h.text(label)
	h.raw("</option>")
}

// Home is the landing page.
func Home(p Page) templ.Component {
	return Layout(p, component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="hero"><h1>`)
		h.text(p.t("common.home.headline"))
		h.raw("</h1><p>")
		h.text(p.t("common.home.intro"))
		h.raw(`</p><p class="actions"><a`)
		h.href("/projects")
		h.raw(">")
		h.text(p.t("common.nav.projects"))
		h.raw("</a><a")
		h.href("/contact")
		h.raw(">")
		h.text(p.t("common.nav.contact"))
		h.raw("</a></p></section>")
	}))
}

// ErrorPage renders a failure with its status line.
func ErrorPage(p Page, status int, message string) templ.Component {
	return Layout(p, ErrorAlert(status, message))
}

// ErrorAlert is the error body on its own, for htmx swaps.
func ErrorAlert(status int, message string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="alert alert-error" role="alert"`)
		h.attr("data-status", itoa(status))
		h.raw(">")
		h.text(message)
		h.raw("</div>")
	})
}
