package ratecache

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-memory rate cache. Entries are evicted purely by age:
// the working set is bounded by the number of currency pairs in use, so
// there is no count-based eviction. A background janitor sweeps aged-out
// entries so the map does not accumulate dead pairs between lookups.
type Memory struct {
	items  map[string]Rate
	opts   *memoryOptions
	done   chan struct{}
	mu     sync.Mutex
	closed bool
}

// NewMemory creates an in-memory rate cache.
//
// Example:
//
//	c := ratecache.NewMemory(
//	    ratecache.WithMaxAge(30 * time.Minute),
//	)
//	defer c.Close()
func NewMemory(opts ...MemoryOption) *Memory {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory{
		items: make(map[string]Rate),
		opts:  o,
		done:  make(chan struct{}),
	}

	if o.cleanupInterval > 0 {
		go m.janitor()
	}

	return m
}

// Get retrieves the rate for a pair key.
// Returns ErrNotFound when the pair is absent or older than the maximum age.
func (m *Memory) Get(_ context.Context, pair string) (Rate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.items[pair]
	if !ok {
		return Rate{}, ErrNotFound
	}

	if m.stale(r) {
		delete(m.items, pair)
		return Rate{}, ErrNotFound
	}

	return r, nil
}

// Set stores a rate for a pair key, replacing any previous entry.
func (m *Memory) Set(_ context.Context, pair string, rate Rate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	m.items[pair] = rate
	return nil
}

// Close stops the background janitor. Close is idempotent.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	m.closed = true
	close(m.done)
	return nil
}

func (m *Memory) stale(r Rate) bool {
	return time.Since(r.FetchedAt) >= m.opts.maxAge
}

func (m *Memory) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.deleteStale()
		}
	}
}

func (m *Memory) deleteStale() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for pair, r := range m.items {
		if m.stale(r) {
			delete(m.items, pair)
		}
	}
}

var _ Cache = (*Memory)(nil)
