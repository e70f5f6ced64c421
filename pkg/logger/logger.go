package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

type config struct {
	out        io.Writer
	level      slog.Level
	text       bool
	sentryDSN  string
	sentryEnv  string
	extractors []ContextExtractor
}

// Option configures the logger factory.
type Option func(*config)

// WithOutput sets the log destination. Default: stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.out = w
		}
	}
}

// WithLevel sets the minimum level. Default: info.
func WithLevel(l slog.Level) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithTextFormat switches from JSON to human-readable text output,
// meant for local development.
func WithTextFormat() Option {
	return func(c *config) {
		c.text = true
	}
}

// WithSentry forwards warnings and errors to Sentry in addition to the
// primary output. An empty DSN disables the integration, so local
// environments can share the production configuration path.
func WithSentry(dsn, environment string) Option {
	return func(c *config) {
		c.sentryDSN = dsn
		c.sentryEnv = environment
	}
}

// WithContextExtractors registers functions that pull request-scoped
// attributes (request IDs and the like) out of the context on every log
// call. Nil extractors are ignored.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// New builds the application logger. Without options it writes JSON at
// info level to stdout.
//
// When a Sentry DSN is configured, errors become Sentry issues and
// warnings are forwarded as Sentry logs. A failed Sentry init degrades
// to plain output rather than failing startup.
func New(opts ...Option) *slog.Logger {
	cfg := &config{out: os.Stdout, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(cfg)
	}

	var primary slog.Handler
	if cfg.text {
		primary = slog.NewTextHandler(cfg.out, &slog.HandlerOptions{Level: cfg.level})
	} else {
		primary = slog.NewJSONHandler(cfg.out, &slog.HandlerOptions{Level: cfg.level})
	}

	handler := primary
	if cfg.sentryDSN != "" {
		if sh := newSentryHandler(cfg); sh != nil {
			handler = newFanoutHandler(primary, sh)
		}
	}

	return slog.New(newContextHandler(handler, cfg.extractors))
}

func newSentryHandler(cfg *config) slog.Handler {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.sentryDSN,
		Environment: cfg.sentryEnv,
		EnableLogs:  true,
	})
	if err != nil {
		slog.New(slog.NewJSONHandler(cfg.out, nil)).
			Error("sentry init failed", slog.String("error", err.Error()))
		return nil
	}

	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())
}
