package settings

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists settings as a single JSON value in Redis, for
// deployments where several instances serve the same user base.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedis creates a Redis-backed store. An empty key defaults to
// "unitglance:settings".
func NewRedis(client redis.UniversalClient, key string) *RedisStore {
	if key == "" {
		key = "unitglance:settings"
	}
	return &RedisStore{client: client, key: key}
}

// Load fetches and decodes the stored settings.
// Returns ErrNotFound when the key is absent.
func (r *RedisStore) Load(ctx context.Context) (Settings, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Settings{}, ErrNotFound
		}
		return Settings{}, err
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save encodes and stores the settings without expiration.
func (r *RedisStore) Save(ctx context.Context, s Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, data, 0).Err()
}

var _ Store = (*RedisStore)(nil)
