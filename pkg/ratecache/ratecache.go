package ratecache

import (
	"context"
	"strings"
	"time"
)

// Rate is a cached exchange rate together with the time it was fetched.
// Entries expire by age, never by count: a rate older than the cache's
// maximum age is treated as absent.
type Rate struct {
	Value     float64   `msgpack:"v" json:"value"`
	FetchedAt time.Time `msgpack:"t" json:"fetched_at"`
}

// Cache stores exchange rates keyed by ordered currency pair.
//
// Implementations must treat entries older than the configured maximum
// age (default [DefaultMaxAge]) as misses.
type Cache interface {
	// Get retrieves the rate for a pair key.
	// Returns ErrNotFound when the pair is absent or its entry has aged out.
	Get(ctx context.Context, pair string) (Rate, error)

	// Set stores a rate for a pair key.
	Set(ctx context.Context, pair string, rate Rate) error

	// Close releases resources (stops background goroutines, etc.).
	Close() error
}

// DefaultMaxAge is the age bound after which a cached rate is stale.
const DefaultMaxAge = 30 * time.Minute

// PairKey builds the cache key for an ordered currency pair. The pair is
// directional: usd->eur and eur->usd are distinct entries.
func PairKey(from, to string) string {
	return strings.ToLower(from) + "-" + strings.ToLower(to)
}
