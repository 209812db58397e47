// Package redis opens the go-redis client used by the document cache.
//
//	var cfg redis.Config
//	if err := env.Parse(&cfg); err != nil {
//	    return err
//	}
//	client, err := redis.Open(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	documents := store.NewCached(base, cache.NewRedis[store.Document](client, cache.WithPrefix("docs")))
//
// [Healthcheck] and [Shutdown] plug the client into the app's readiness
// endpoint and graceful shutdown.
package redis
