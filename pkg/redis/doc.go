// Package redis opens the optional Redis connection that backs the shared
// cache, and provides the readiness check and shutdown hook for it.
//
//	client, err := redis.Open(ctx, cfg.Redis, log)
//	if err != nil {
//		return err
//	}
//	app := folio.New(folio.WithHealthChecks(
//		folio.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	))
//	return app.Run(addr, folio.ShutdownHook(redis.Shutdown(client)))
package redis
