package rates

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/unitglance/unitglance/pkg/ratecache"
)

// Source fetches an exchange rate for a currency pair. *Client satisfies
// it; tests substitute stubs.
type Source interface {
	Rate(ctx context.Context, from, to string) (float64, error)
}

// Service answers rate lookups from a time-bounded cache, delegating
// misses to a Source. Concurrent misses for the same pair are collapsed
// to a single provider request via singleflight.
type Service struct {
	source Source
	cache  ratecache.Cache
	log    *slog.Logger
	sf     singleflight.Group
}

// ServiceOption configures the rate service.
type ServiceOption func(*Service)

// WithLogger sets the service logger. Default: discard.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService creates a cached rate service over the given source and cache.
func NewService(source Source, cache ratecache.Cache, opts ...ServiceOption) *Service {
	s := &Service{
		source: source,
		cache:  cache,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rate returns the exchange rate for a currency pair, from cache when
// fresh, otherwise from the source. A fetched rate is cached best-effort
// with the fetch timestamp; cache write failures are logged, not returned.
func (s *Service) Rate(ctx context.Context, from, to string) (float64, error) {
	pair := ratecache.PairKey(from, to)

	if cached, err := s.cache.Get(ctx, pair); err == nil {
		return cached.Value, nil
	} else if !errors.Is(err, ratecache.ErrNotFound) {
		s.log.WarnContext(ctx, "rate cache read failed",
			slog.String("pair", pair), slog.String("error", err.Error()))
	}

	v, err, _ := s.sf.Do(pair, func() (any, error) {
		rate, err := s.source.Rate(ctx, from, to)
		if err != nil {
			return nil, err
		}

		entry := ratecache.Rate{Value: rate, FetchedAt: time.Now()}
		if err := s.cache.Set(ctx, pair, entry); err != nil {
			s.log.WarnContext(ctx, "rate cache write failed",
				slog.String("pair", pair), slog.String("error", err.Error()))
		}
		return rate, nil
	})
	if err != nil {
		return 0, fmt.Errorf("rates: lookup %s: %w", pair, err)
	}

	return v.(float64), nil
}

var _ Source = (*Client)(nil)
var _ Source = (*Service)(nil)
