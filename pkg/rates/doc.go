// Package rates fetches and caches currency exchange rates.
//
// [Client] talks to the HTTP rate provider: one JSON document per base
// currency, tried against a primary endpoint and retried once against a
// fallback before the lookup fails with [ErrUnavailable].
//
// [Service] wraps any [Source] with a time-bounded cache
// (pkg/ratecache) and singleflight deduplication, so a burst of
// detections on the same page costs at most one provider request per
// currency pair per cache window:
//
//	svc := rates.NewService(rates.NewClient(), ratecache.NewMemory())
//	rate, err := svc.Rate(ctx, "USD", "EUR")
//
// [Warmer] optionally re-fetches a fixed set of popular pairs on a cron
// schedule to keep the cache warm between interactive lookups.
package rates
