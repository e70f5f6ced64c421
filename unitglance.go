package unitglance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/unitglance/unitglance/pkg/currency"
	"github.com/unitglance/unitglance/pkg/detect"
	"github.com/unitglance/unitglance/pkg/ratecache"
	"github.com/unitglance/unitglance/pkg/rates"
	"github.com/unitglance/unitglance/pkg/settings"
	"github.com/unitglance/unitglance/pkg/units"
)

// Engine ties detection, user preferences and rate resolution together
// behind one facade. Construct it once with New and share it; all
// methods are safe for concurrent use.
type Engine struct {
	table    *units.Table
	resolver *currency.Resolver
	detector *detect.Detector
	rates    rates.Source
	store    settings.Store
	log      *slog.Logger

	// ownedCache is set only when New built the default rate service,
	// so Close never tears down caller-provided infrastructure.
	ownedCache ratecache.Cache
}

// New creates an engine. Without options it detects with built-in
// defaults, keeps settings in memory, and resolves currency through the
// public rate provider with a 30-minute in-memory cache.
func New(opts ...Option) *Engine {
	e := &Engine{
		table:    units.NewTable(),
		resolver: currency.NewResolver(),
		store:    settings.NewMemory(),
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.rates == nil {
		cache := ratecache.NewMemory()
		e.ownedCache = cache
		e.rates = rates.NewService(rates.NewClient(), cache, rates.WithLogger(e.log))
	}

	e.detector = detect.New(e.table, e.resolver)
	return e
}

// Close releases resources the engine created for itself. Rate sources
// and stores passed in through options are left untouched.
func (e *Engine) Close() error {
	if e.ownedCache != nil {
		return e.ownedCache.Close()
	}
	return nil
}

// Detect scans text for measurements using the persisted preferences.
// A store that has never been saved to falls back to the built-in
// defaults; any other store failure is returned.
//
// Currency results come back pending; pass them through Resolve to fill
// in the converted amounts.
func (e *Engine) Detect(ctx context.Context, text string, loc currency.LocaleContext) ([]detect.Conversion, error) {
	prefs, err := e.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrNotFound) {
			return nil, fmt.Errorf("unitglance: load settings: %w", err)
		}
		prefs = settings.Defaults()
	}
	return e.detector.FindConversions(text, prefs, loc), nil
}

// DetectWith scans text with explicit preferences, bypassing the store.
// Empty preference fields fall back to the built-in defaults.
func (e *Engine) DetectWith(text string, prefs settings.Settings, loc currency.LocaleContext) []detect.Conversion {
	return e.detector.FindConversions(text, prefs, loc)
}

// Resolve fills in the pending currency conversions by fetching
// exchange rates. Results whose rate lookup fails are dropped from the
// returned slice, with a warning logged: an unconvertible amount is
// noise to the reader, not an error to surface. Already-resolved
// entries pass through unchanged.
func (e *Engine) Resolve(ctx context.Context, convs []detect.Conversion, loc currency.LocaleContext) []detect.Conversion {
	out := make([]detect.Conversion, 0, len(convs))
	for _, c := range convs {
		if c.Resolved() {
			out = append(out, c)
			continue
		}

		p := c.Pending
		rate, err := e.rates.Rate(ctx, p.From, p.To)
		if err != nil {
			e.log.WarnContext(ctx, "rate lookup failed",
				slog.String("from", p.From),
				slog.String("to", p.To),
				slog.String("error", err.Error()))
			continue
		}

		c.Converted = e.resolver.FormatAmount(p.Amount*rate, p.To, loc)
		c.Pending = nil
		out = append(out, c)
	}
	return out
}

// Settings returns the persisted preferences with defaults filled in.
func (e *Engine) Settings(ctx context.Context) (settings.Settings, error) {
	s, err := e.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrNotFound) {
			return settings.Settings{}, fmt.Errorf("unitglance: load settings: %w", err)
		}
		s = settings.Settings{}
	}
	return s.WithDefaults(), nil
}

// SaveSettings validates and persists new preferences.
func (e *Engine) SaveSettings(ctx context.Context, s settings.Settings) error {
	if err := s.Validate(e.table); err != nil {
		return fmt.Errorf("unitglance: %w", err)
	}
	if err := e.store.Save(ctx, s); err != nil {
		return fmt.Errorf("unitglance: save settings: %w", err)
	}
	return nil
}
