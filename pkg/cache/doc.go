// Package cache provides a typed [Cache] with in-memory and Redis backends
// and a stampede-safe [GetOrSet].
//
// The site caches geolocation lookups per IP and the GitHub repository list
// per user. Without REDIS_URL both live in [Memory]; with it they live in
// [Redis] so multiple instances share upstream quota.
//
//	c := cache.NewMemory[[]projects.Repo](cache.WithMaxEntries(16))
//	defer c.Close()
//
//	repos, err := cache.GetOrSet(ctx, c, "repos:"+user, func(ctx context.Context) ([]projects.Repo, time.Duration, error) {
//	    rs, err := client.List(ctx)
//	    return rs, 30 * time.Minute, err
//	})
package cache
