package rates

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Pair is a directional currency pair warmed by the Warmer.
type Pair struct {
	From string
	To   string
}

// Warmer periodically re-fetches a fixed set of currency pairs so
// interactive lookups for common conversions hit a warm cache instead of
// paying the provider round trip. The schedule should be shorter than
// the cache's maximum age.
type Warmer struct {
	svc   *Service
	pairs []Pair
	cron  *cron.Cron
	log   *slog.Logger
}

// NewWarmer creates a warmer for the given pairs on a cron schedule
// (standard 5-field spec, e.g. "*/20 * * * *").
func NewWarmer(svc *Service, pairs []Pair, schedule string, log *slog.Logger) (*Warmer, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	w := &Warmer{
		svc:   svc,
		pairs: pairs,
		cron:  cron.New(),
		log:   log,
	}

	if _, err := w.cron.AddFunc(schedule, w.warm); err != nil {
		return nil, err
	}
	return w, nil
}

// Start launches the schedule and performs one immediate warm-up pass.
func (w *Warmer) Start() {
	w.warm()
	w.cron.Start()
}

// Stop halts the schedule, waiting for a running pass to finish.
func (w *Warmer) Stop() {
	<-w.cron.Stop().Done()
}

func (w *Warmer) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, p := range w.pairs {
		if _, err := w.svc.Rate(ctx, p.From, p.To); err != nil {
			w.log.WarnContext(ctx, "rate warm-up failed",
				slog.String("from", p.From),
				slog.String("to", p.To),
				slog.String("error", err.Error()))
		}
	}
}
