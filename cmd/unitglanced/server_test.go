package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unitglance/unitglance"
)

type fixedRates struct {
	rate float64
}

func (f *fixedRates) Rate(context.Context, string, string) (float64, error) {
	return f.rate, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	engine := unitglance.New(unitglance.WithRates(&fixedRates{rate: 1.1}))
	t.Cleanup(func() { _ = engine.Close() })

	return newRouter(engine, slog.New(slog.DiscardHandler), nil)
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestConversionsEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("detects and resolves", func(t *testing.T) {
		t.Parallel()

		body := `{"text":"the desk is 5 ft wide and costs €100","locale":"en-US"}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/conversions", strings.NewReader(body))
		newTestRouter(t).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"converted":"1.524 m"`)
		require.Contains(t, rec.Body.String(), `"converted":"110.00 USD $"`)
	})

	t.Run("per-request settings override", func(t *testing.T) {
		t.Parallel()

		body := `{"text":"it was 20 C","settings":{"temperature":"f"}}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/conversions", strings.NewReader(body))
		newTestRouter(t).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"converted":"68 f"`)
	})

	t.Run("empty text rejected", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/conversions", strings.NewReader(`{}`))
		newTestRouter(t).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSettingsEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/settings", strings.NewReader(`{"length":"ft"}`))
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/settings", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"length":"ft"`)
	})

	t.Run("invalid unit rejected", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/settings", strings.NewReader(`{"length":"parsec"}`))
		newTestRouter(t).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
