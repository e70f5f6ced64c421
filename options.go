package unitglance

import (
	"log/slog"

	"github.com/unitglance/unitglance/pkg/rates"
	"github.com/unitglance/unitglance/pkg/settings"
)

// Option configures the engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
// Defaults to a discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRates sets the exchange-rate source used by Resolve.
// Defaults to the public rate provider behind an in-memory cache.
func WithRates(src rates.Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.rates = src
		}
	}
}

// WithSettingsStore sets the preference store.
// Defaults to an in-memory store.
func WithSettingsStore(store settings.Store) Option {
	return func(e *Engine) {
		if store != nil {
			e.store = store
		}
	}
}
