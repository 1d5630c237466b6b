package handlers

import (
	"net/http"

	"github.com/dmitrymomot/folio"
	"github.com/dmitrymomot/folio/pkg/preferences"
	"github.com/dmitrymomot/folio/views"
)

// Site holds what every page needs to render its chrome.
type Site struct {
	// Languages feeds the language picker, default first.
	Languages []string
}

// page builds the layout state for the current request.
func (s Site) page(c folio.Context, titleKey, path string) views.Page {
	p := views.Page{
		T:         c.T,
		Title:     c.T(titleKey),
		Path:      path,
		Lang:      c.Language(),
		Format:    c.Format(),
		Languages: s.Languages,
	}
	if settings, ok := preferences.FromContext(c); ok {
		p.Theme = settings.Theme
		p.Navigation = settings.Navigation
	}
	return p
}

// Home serves the landing page.
type Home struct {
	site Site
}

// NewHome creates the landing page handler.
func NewHome(site Site) *Home {
	return &Home{site: site}
}

func (h *Home) Routes(r folio.Router) {
	r.GET("/", h.index)
}

func (h *Home) index(c folio.Context) error {
	return c.Render(http.StatusOK, views.Home(h.site.page(c, "common.nav.home", "/")))
}
