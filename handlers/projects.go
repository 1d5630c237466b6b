package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/folio"
	"github.com/dmitrymomot/folio/middlewares"
	"github.com/dmitrymomot/folio/pkg/projects"
	"github.com/dmitrymomot/folio/views"
)

// RepoSource lists the gallery. *projects.Service satisfies it.
type RepoSource interface {
	List(ctx context.Context) ([]projects.Repo, error)
}

// DefaultUpstreamTimeout bounds routes that call a third-party API.
const DefaultUpstreamTimeout = 10 * time.Second

// Projects serves the repository gallery.
type Projects struct {
	src     RepoSource
	site    Site
	timeout time.Duration
}

// NewProjects creates the gallery handler. A non-positive timeout means
// DefaultUpstreamTimeout.
func NewProjects(src RepoSource, site Site, timeout time.Duration) *Projects {
	if timeout <= 0 {
		timeout = DefaultUpstreamTimeout
	}
	return &Projects{src: src, site: site, timeout: timeout}
}

func (h *Projects) Routes(r folio.Router) {
	r.GET("/projects", h.list, middlewares.Timeout(h.timeout))
}

type projectsResponse struct {
	Query     projects.Query  `json:"query"`
	Repos     []projects.Repo `json:"repos"`
	Languages []string        `json:"languages"`
	Total     int             `json:"total"`
	Stars     int             `json:"stars"`
	// Unavailable is set when GitHub failed and the list is empty because of it.
	Unavailable bool `json:"unavailable,omitempty"`
}

// list never fails on upstream errors: the gallery renders empty and the
// failure is logged.
func (h *Projects) list(c folio.Context) error {
	q := projects.Query{
		Search:   c.Query("q"),
		Language: c.QueryDefault("language", projects.LanguageAll),
		Sort:     projects.ParseSort(c.Query("sort")),
	}

	all, err := h.src.List(c)
	unavailable := err != nil
	if err != nil {
		c.LogWarn("projects unavailable", slog.Any("error", err))
		all = nil
	}
	repos := q.Apply(all)

	if c.WantsJSON() {
		return c.JSON(http.StatusOK, projectsResponse{
			Query:       q,
			Repos:       repos,
			Languages:   projects.Languages(all),
			Total:       len(repos),
			Stars:       projects.TotalStars(repos),
			Unavailable: unavailable,
		})
	}

	data := views.ProjectsData{
		Query:       q,
		Repos:       repos,
		Languages:   projects.Languages(all),
		Unavailable: unavailable,
	}
	return c.RenderPartial(http.StatusOK,
		views.ProjectsPage(h.site.page(c, "projects.title", "/projects"), data),
		views.ProjectsList(h.site.page(c, "projects.title", "/projects"), data),
	)
}
