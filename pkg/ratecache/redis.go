package ratecache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

// Redis is a rate cache backed by Redis, for deployments where several
// instances should share one pool of fetched rates. Entries are stored
// msgpack-encoded with a TTL equal to the maximum age, so Redis handles
// the age-based eviction itself.
type Redis struct {
	client redis.UniversalClient
	opts   *redisOptions
}

// NewRedis creates a Redis-backed rate cache.
//
// Example:
//
//	c := ratecache.NewRedis(client,
//	    ratecache.WithPrefix("rates"),
//	    ratecache.WithRedisMaxAge(30 * time.Minute),
//	)
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	o := defaultRedisOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Redis{client: client, opts: o}
}

// Get retrieves the rate for a pair key.
// Returns ErrNotFound when the pair is absent (or its TTL has lapsed).
func (r *Redis) Get(ctx context.Context, pair string) (Rate, error) {
	data, err := r.client.Get(ctx, r.key(pair)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Rate{}, ErrNotFound
		}
		return Rate{}, err
	}

	var rate Rate
	if err := msgpack.Unmarshal(data, &rate); err != nil {
		return Rate{}, errors.Join(ErrUnmarshal, err)
	}
	return rate, nil
}

// Set stores a rate with the configured TTL.
func (r *Redis) Set(ctx context.Context, pair string, rate Rate) error {
	data, err := msgpack.Marshal(rate)
	if err != nil {
		return errors.Join(ErrMarshal, err)
	}
	return r.client.Set(ctx, r.key(pair), data, r.opts.maxAge).Err()
}

// Close is a no-op: the Redis client is owned by the caller.
func (r *Redis) Close() error {
	return nil
}

func (r *Redis) key(pair string) string {
	return r.opts.prefix + ":" + pair
}

var _ Cache = (*Redis)(nil)
