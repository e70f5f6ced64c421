package rates_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unitglance/unitglance/pkg/rates"
)

func rateHandler(t *testing.T, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/usd.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestClient_Rate(t *testing.T) {
	t.Parallel()

	const payload = `{"date":"2025-01-02","usd":{"eur":0.92,"gbp":0.79}}`

	t.Run("primary endpoint answers", func(t *testing.T) {
		t.Parallel()

		primary := httptest.NewServer(rateHandler(t, payload))
		defer primary.Close()

		c := rates.NewClient(rates.WithEndpoints(primary.URL+"/", primary.URL+"/"))

		rate, err := c.Rate(context.Background(), "USD", "EUR")
		require.NoError(t, err)
		require.InDelta(t, 0.92, rate, 1e-9)
	})

	t.Run("falls back when primary fails", func(t *testing.T) {
		t.Parallel()

		primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer primary.Close()

		fallback := httptest.NewServer(rateHandler(t, payload))
		defer fallback.Close()

		c := rates.NewClient(rates.WithEndpoints(primary.URL+"/", fallback.URL+"/"))

		rate, err := c.Rate(context.Background(), "usd", "gbp")
		require.NoError(t, err)
		require.InDelta(t, 0.79, rate, 1e-9)
	})

	t.Run("both endpoints failing is ErrUnavailable", func(t *testing.T) {
		t.Parallel()

		down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer down.Close()

		c := rates.NewClient(rates.WithEndpoints(down.URL+"/", down.URL+"/"))

		_, err := c.Rate(context.Background(), "usd", "eur")
		require.ErrorIs(t, err, rates.ErrUnavailable)
	})

	t.Run("pair missing from table is ErrUnknownPair", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(rateHandler(t, payload))
		defer srv.Close()

		c := rates.NewClient(rates.WithEndpoints(srv.URL+"/", srv.URL+"/"))

		_, err := c.Rate(context.Background(), "usd", "xxx")
		require.ErrorIs(t, err, rates.ErrUnknownPair)
	})
}
