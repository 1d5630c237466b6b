package views

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/folio/pkg/i18n"
	"github.com/dmitrymomot/folio/pkg/projects"
)

// ProjectsData is one rendering of the gallery.
type ProjectsData struct {
	Query     projects.Query
	Repos     []projects.Repo
	Languages []string
	// Unavailable is set when GitHub could not be reached.
	Unavailable bool
}

var sortOptions = []projects.Sort{
	projects.SortUpdated,
	projects.SortCreated,
	projects.SortStars,
	projects.SortForks,
	projects.SortName,
}

// ProjectsPage is the full gallery page with its filters.
func ProjectsPage(p Page, d ProjectsData) templ.Component {
	return Layout(p, component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="projects"><h1>`)
		h.text(p.t("projects.title"))
		h.raw("</h1><p>")
		h.text(p.t("projects.intro"))
		h.raw("</p>")

		h.raw(`<form class="filters" method="get" action="/projects" hx-get="/projects" hx-target="#project-list" hx-swap="outerHTML" hx-push-url="true" hx-trigger="input changed delay:300ms from:input[name=q], change">`)
		h.raw(`<input type="search" name="q"`)
		h.attr("value", d.Query.Search)
		h.attr("placeholder", p.t("projects.search"))
		h.raw(`><select name="language">`)
		option(h, projects.LanguageAll, p.t("projects.language_all"), d.Query.Language == "" || d.Query.Language == projects.LanguageAll)
		for _, l := range d.Languages {
			option(h, l, l, l == d.Query.Language)
		}
		h.raw(`</select><select name="sort">`)
		current := projects.ParseSort(string(d.Query.Sort))
		for _, s := range sortOptions {
			option(h, string(s), p.t("projects.sort."+string(s)), s == current)
		}
		h.raw(`</select><noscript><button type="submit">`)
		h.text(p.t("projects.apply"))
		h.raw("</button></noscript></form>")

		h.render(ctx, ProjectsList(p, d))
		h.raw("</section>")
	}))
}

// ProjectsList is the result grid, swapped by the filter form.
func ProjectsList(p Page, d ProjectsData) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div id="project-list">`)
		if d.Unavailable {
			h.raw(`<p class="notice">`)
			h.text(p.t("projects.unavailable"))
			h.raw("</p>")
		}
		if len(d.Repos) == 0 {
			if !d.Unavailable {
				h.raw(`<p class="empty">`)
				h.text(p.t("projects.empty"))
				h.raw("</p>")
			}
			h.raw("</div>")
			return
		}

		h.raw(`<p class="summary">`)
		h.text(p.t("projects.count", i18n.M{
			"count": count(p, len(d.Repos)),
			"stars": count(p, projects.TotalStars(d.Repos)),
		}))
		h.raw(`</p><ul class="grid">`)
		for _, r := range d.Repos {
			repoCard(h, p, r)
		}
		h.raw("</ul></div>")
	})
}

func repoCard(h *htmlWriter, p Page, r projects.Repo) {
	h.raw(`<li class="card"><h2><a`)
	h.href(r.HTMLURL)
	h.raw(` rel="noopener" target="_blank">`)
	h.text(r.Name)
	h.raw("</a></h2>")
	if r.Description != "" {
		h.raw("<p>")
		h.text(r.Description)
		h.raw("</p>")
	}

	h.raw(`<dl class="stats">`)
	if r.Language != "" {
		h.raw(`<dt>`)
		h.text(p.t("projects.language"))
		h.raw(`</dt><dd class="language">`)
		h.text(r.Language)
		h.raw("</dd>")
	}
	h.raw(`<dt>`)
	h.text(p.t("projects.stars"))
	h.raw(`</dt><dd class="stars">`)
	h.text(count(p, r.Stars))
	h.raw(`</dd><dt>`)
	h.text(p.t("projects.forks"))
	h.raw(`</dt><dd class="forks">`)
	h.text(count(p, r.Forks))
	h.raw(`</dd><dt>`)
	h.text(p.t("projects.size"))
	h.raw(`</dt><dd class="size">`)
	h.text(size(r.Size))
	h.raw(`</dd><dt>`)
	h.text(p.t("projects.updated"))
	h.raw(`</dt><dd><time`)
	h.attr("datetime", r.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"))
	h.raw(">")
	h.text(updated(p, r.UpdatedAt))
	h.raw("</time></dd></dl>")

	if len(r.Topics) > 0 {
		h.raw(`<ul class="topics">`)
		for _, t := range r.Topics {
			h.raw("<li>")
			h.text(t)
			h.raw("</li>")
		}
		h.raw("</ul>")
	}
	if home := strings.TrimSpace(r.Homepage); home != "" {
		h.raw(`<a class="homepage"`)
		h.href(home)
		h.raw(` rel="noopener" target="_blank">`)
		h.text(p.t("projects.homepage"))
		h.raw("</a>")
	}
	h.raw("</li>")
}
