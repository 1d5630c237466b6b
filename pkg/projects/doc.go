// Package projects powers the portfolio's project gallery: it lists the
// owner's public GitHub repositories, caches them and applies the search,
// language filter and sort chosen by the visitor.
//
//	client, _ := projects.NewClient(cfg, nil)
//	svc := projects.NewService(client, cache.NewMemory[[]projects.Repo](), cfg.User)
//	repos, err := svc.Search(ctx, projects.Query{Language: "Go", Sort: projects.SortStars})
//
// A Refresher keeps the cache warm on a cron schedule.
package projects
