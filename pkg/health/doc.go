// Package health provides liveness and readiness handlers for the hub.
//
// The readiness handler runs named checks concurrently, typically the
// document store pool and the cache client:
//
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "postgres": db.Healthcheck(pool),
//	    "redis":    redis.Healthcheck(client),
//	}))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client
// sends Accept: application/json or ?format=json, in which case the body is
// a [Response].
package health
