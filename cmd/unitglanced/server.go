package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/unitglance/unitglance"
	"github.com/unitglance/unitglance/pkg/currency"
	"github.com/unitglance/unitglance/pkg/detect"
	"github.com/unitglance/unitglance/pkg/health"
	"github.com/unitglance/unitglance/pkg/settings"
	"github.com/unitglance/unitglance/pkg/units"
)

type ctxKeyRequestID struct{}

// requestIDExtractor surfaces the per-request ID in every log record.
func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(ctxKeyRequestID{}).(string)
	return slog.String("request_id", id), ok
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)

		ctx := context.WithValue(r.Context(), ctxKeyRequestID{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)))
		})
	}
}

type conversionsRequest struct {
	Text string `json:"text"`
	// Locale is a BCP 47 tag ("en-US"); TLD the page's domain suffix.
	Locale string `json:"locale"`
	TLD    string `json:"tld"`
	// Settings overrides the persisted preferences for this request.
	Settings *settings.Settings `json:"settings"`
}

type conversionItem struct {
	Original  string         `json:"original"`
	Converted string         `json:"converted"`
	Category  units.Category `json:"category"`
	Start     int            `json:"start"`
	End       int            `json:"end"`
}

type conversionsResponse struct {
	Conversions []conversionItem `json:"conversions"`
}

func newRouter(engine *unitglance.Engine, log *slog.Logger, checks health.Checks) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", health.LivenessHandler())
	r.Get("/readyz", health.ReadinessHandler(checks, health.WithLogger(log)))

	r.Post("/v1/conversions", handleConversions(engine, log))
	r.Get("/v1/settings", handleGetSettings(engine))
	r.Put("/v1/settings", handlePutSettings(engine))

	return r
}

func handleConversions(engine *unitglance.Engine, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req conversionsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.Text == "" {
			writeError(w, http.StatusBadRequest, "text is required")
			return
		}

		ctx := r.Context()
		loc := currency.ParseLocale(req.Locale, req.TLD)

		var convs []detect.Conversion
		if req.Settings != nil {
			convs = engine.DetectWith(req.Text, *req.Settings, loc)
		} else {
			var err error
			convs, err = engine.Detect(ctx, req.Text, loc)
			if err != nil {
				log.ErrorContext(ctx, "detect failed", slog.String("error", err.Error()))
				writeError(w, http.StatusInternalServerError, "detection failed")
				return
			}
		}

		convs = engine.Resolve(ctx, convs, loc)

		resp := conversionsResponse{Conversions: make([]conversionItem, 0, len(convs))}
		for _, c := range convs {
			resp.Conversions = append(resp.Conversions, conversionItem{
				Original:  c.Original,
				Converted: c.Converted,
				Category:  c.Category,
				Start:     c.Span.Start,
				End:       c.Span.End,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleGetSettings(engine *unitglance.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := engine.Settings(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "settings unavailable")
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

func handlePutSettings(engine *unitglance.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var s settings.Settings
		if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if err := engine.SaveSettings(r.Context(), s); err != nil {
			if errors.Is(err, settings.ErrInvalidUnit) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "could not save settings")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
