package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unitglance/unitglance"
	"github.com/unitglance/unitglance/pkg/health"
	"github.com/unitglance/unitglance/pkg/logger"
	"github.com/unitglance/unitglance/pkg/ratecache"
	"github.com/unitglance/unitglance/pkg/rates"
	"github.com/unitglance/unitglance/pkg/redis"
	"github.com/unitglance/unitglance/pkg/settings"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("configuration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := newLogger(cfg)

	var redisClient goredis.UniversalClient
	if cfg.RedisURL != "" {
		var err error
		redisClient, err = redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer redisClient.Close()
	}

	var cache ratecache.Cache
	if redisClient != nil {
		cache = ratecache.NewRedis(redisClient)
	} else {
		cache = ratecache.NewMemory()
	}
	defer cache.Close()

	client := rates.NewClient(rates.WithEndpoints(cfg.Rates.PrimaryURL, cfg.Rates.FallbackURL))
	rateSvc := rates.NewService(client, cache, rates.WithLogger(log))

	store := newSettingsStore(ctx, cfg, redisClient, log)

	engine := unitglance.New(
		unitglance.WithLogger(log),
		unitglance.WithRates(rateSvc),
		unitglance.WithSettingsStore(store),
	)
	defer engine.Close()

	if pairs := cfg.warmPairs(); len(pairs) > 0 {
		warmer, err := rates.NewWarmer(rateSvc, pairs, cfg.Rates.WarmSchedule, log)
		if err != nil {
			return err
		}
		go warmer.Start()
		defer warmer.Stop()
	}

	checks := health.Checks{}
	if redisClient != nil {
		checks["redis"] = redis.Healthcheck(redisClient)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(engine, log, checks),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "listening", slog.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithLevel(parseLevel(cfg.Log.Level)),
		logger.WithSentry(cfg.Sentry.DSN, cfg.Sentry.Environment),
		logger.WithContextExtractors(requestIDExtractor),
	}
	if strings.EqualFold(cfg.Log.Format, "text") {
		opts = append(opts, logger.WithTextFormat())
	}
	return logger.New(opts...)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newSettingsStore picks the preference backend: a watched YAML file
// when configured, Redis when available, in-process memory otherwise.
func newSettingsStore(ctx context.Context, cfg Config, redisClient goredis.UniversalClient, log *slog.Logger) settings.Store {
	if cfg.SettingsFile != "" {
		file := settings.NewFile(cfg.SettingsFile, log)

		// Re-reads on external edits keep long-running servers in sync
		// with hand-edited preference files.
		go func() {
			err := file.Watch(ctx, func(settings.Settings) {
				log.InfoContext(ctx, "settings file reloaded")
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				log.WarnContext(ctx, "settings watch stopped", slog.String("error", err.Error()))
			}
		}()
		return file
	}

	if redisClient != nil {
		return settings.NewRedis(redisClient, "")
	}

	return settings.NewMemory()
}
