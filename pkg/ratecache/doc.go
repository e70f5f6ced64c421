// Package ratecache caches fetched exchange rates for a bounded time.
//
// Rates go stale, so the cache evicts by age (30 minutes by default),
// never by entry count; the key space is the small set of currency
// pairs actually requested. Keys are built with [PairKey] and are
// directional: usd→eur and eur→usd cache independently.
//
// [NewMemory] is the single-process implementation with a background
// janitor; [NewRedis] shares rates between instances, msgpack-encoded,
// delegating eviction to Redis TTLs. Both satisfy [Cache] and return
// [ErrNotFound] for absent or aged-out pairs.
package ratecache
