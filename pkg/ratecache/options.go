package ratecache

import "time"

// MemoryOption configures the in-memory rate cache.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	maxAge          time.Duration
	cleanupInterval time.Duration
}

func defaultMemoryOptions() *memoryOptions {
	return &memoryOptions{
		maxAge:          DefaultMaxAge,
		cleanupInterval: time.Minute,
	}
}

// WithMaxAge sets the age after which a cached rate counts as stale.
// Default: 30 minutes.
func WithMaxAge(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		if d > 0 {
			o.maxAge = d
		}
	}
}

// WithCleanupInterval sets how often the background janitor sweeps
// aged-out entries. Zero disables the janitor; stale entries are then
// only removed lazily on Get. Default: 1 minute.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = d
	}
}

// RedisOption configures the Redis-backed rate cache.
type RedisOption func(*redisOptions)

type redisOptions struct {
	prefix string
	maxAge time.Duration
}

func defaultRedisOptions() *redisOptions {
	return &redisOptions{
		prefix: "rates",
		maxAge: DefaultMaxAge,
	}
}

// WithPrefix sets the key prefix for Redis entries.
// Default: "rates".
func WithPrefix(prefix string) RedisOption {
	return func(o *redisOptions) {
		if prefix != "" {
			o.prefix = prefix
		}
	}
}

// WithRedisMaxAge sets the Redis TTL applied to stored rates.
// Default: 30 minutes.
func WithRedisMaxAge(d time.Duration) RedisOption {
	return func(o *redisOptions) {
		if d > 0 {
			o.maxAge = d
		}
	}
}
