package ratecache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/unitglance/unitglance/pkg/ratecache"
)

func TestPairKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "usd-eur", ratecache.PairKey("USD", "EUR"))
	require.NotEqual(t, ratecache.PairKey("usd", "eur"), ratecache.PairKey("eur", "usd"))
}

func TestMemory(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrNotFound for missing pair", func(t *testing.T) {
		t.Parallel()

		c := ratecache.NewMemory()
		defer c.Close()

		_, err := c.Get(context.Background(), "usd-eur")
		require.ErrorIs(t, err, ratecache.ErrNotFound)
	})

	t.Run("stores and retrieves a rate", func(t *testing.T) {
		t.Parallel()

		c := ratecache.NewMemory()
		defer c.Close()

		ctx := context.Background()
		want := ratecache.Rate{Value: 0.92, FetchedAt: time.Now()}
		require.NoError(t, c.Set(ctx, "usd-eur", want))

		got, err := c.Get(ctx, "usd-eur")
		require.NoError(t, err)
		require.InDelta(t, want.Value, got.Value, 1e-9)
	})

	t.Run("aged-out rate is a miss", func(t *testing.T) {
		t.Parallel()

		c := ratecache.NewMemory(
			ratecache.WithMaxAge(10*time.Millisecond),
			ratecache.WithCleanupInterval(0),
		)
		defer c.Close()

		ctx := context.Background()
		stale := ratecache.Rate{Value: 0.92, FetchedAt: time.Now().Add(-time.Minute)}
		require.NoError(t, c.Set(ctx, "usd-eur", stale))

		_, err := c.Get(ctx, "usd-eur")
		require.ErrorIs(t, err, ratecache.ErrNotFound)
	})

	t.Run("set after close fails", func(t *testing.T) {
		t.Parallel()

		c := ratecache.NewMemory()
		require.NoError(t, c.Close())
		require.NoError(t, c.Close(), "close is idempotent")

		err := c.Set(context.Background(), "usd-eur", ratecache.Rate{Value: 1})
		require.ErrorIs(t, err, ratecache.ErrClosed)
	})
}
