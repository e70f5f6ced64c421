package rates_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unitglance/unitglance/pkg/ratecache"
	"github.com/unitglance/unitglance/pkg/rates"
)

type stubSource struct {
	calls atomic.Int64
	rate  float64
	err   error
}

func (s *stubSource) Rate(_ context.Context, _, _ string) (float64, error) {
	s.calls.Add(1)
	if s.err != nil {
		return 0, s.err
	}
	return s.rate, nil
}

func TestService_Rate(t *testing.T) {
	t.Parallel()

	t.Run("miss fetches and caches", func(t *testing.T) {
		t.Parallel()

		src := &stubSource{rate: 0.92}
		cache := ratecache.NewMemory(ratecache.WithCleanupInterval(0))
		defer cache.Close()

		svc := rates.NewService(src, cache)
		ctx := context.Background()

		rate, err := svc.Rate(ctx, "USD", "EUR")
		require.NoError(t, err)
		require.InDelta(t, 0.92, rate, 1e-9)

		// Second lookup is served from cache.
		rate, err = svc.Rate(ctx, "USD", "EUR")
		require.NoError(t, err)
		require.InDelta(t, 0.92, rate, 1e-9)
		require.EqualValues(t, 1, src.calls.Load())
	})

	t.Run("distinct pairs fetch independently", func(t *testing.T) {
		t.Parallel()

		src := &stubSource{rate: 1.5}
		cache := ratecache.NewMemory(ratecache.WithCleanupInterval(0))
		defer cache.Close()

		svc := rates.NewService(src, cache)
		ctx := context.Background()

		_, err := svc.Rate(ctx, "usd", "eur")
		require.NoError(t, err)
		_, err = svc.Rate(ctx, "eur", "usd")
		require.NoError(t, err)
		require.EqualValues(t, 2, src.calls.Load())
	})

	t.Run("source failure propagates", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("provider down")
		src := &stubSource{err: wantErr}
		cache := ratecache.NewMemory(ratecache.WithCleanupInterval(0))
		defer cache.Close()

		svc := rates.NewService(src, cache)

		_, err := svc.Rate(context.Background(), "usd", "eur")
		require.ErrorIs(t, err, wantErr)
	})
}
