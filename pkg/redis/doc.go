// Package redis opens verified Redis connections from URLs.
//
// The server uses one shared client for both the exchange-rate cache
// and the settings store; this package owns the connection ceremony so
// those packages can take a ready client:
//
//	client, err := redis.Open(ctx, cfg.RedisURL,
//	    redis.WithPoolSize(20),
//	)
//
// Open pings before returning and retries with a growing backoff, which
// covers the common deployment race where the server container comes up
// before Redis does. Healthcheck wraps a client for readiness probes.
package redis
