// Package health provides liveness and readiness HTTP handlers.
//
// Liveness answers OK while the process runs. Readiness probes the
// server's dependencies (Redis, the rate provider cache) in parallel
// under one deadline and reports per-check results:
//
//	r.Get("/healthz", health.LivenessHandler())
//	r.Get("/readyz", health.ReadinessHandler(health.Checks{
//	    "redis": redis.Healthcheck(client),
//	}))
//
// A readiness failure returns 503 with a JSON breakdown, which is what
// orchestrators key traffic routing on.
package health
