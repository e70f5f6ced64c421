package settings

import (
	"context"
	"sync"
)

// Store persists user unit preferences. The engine only ever reads
// through Load; Save exists for whatever settings surface fronts the
// store (an extension popup, an admin endpoint).
type Store interface {
	// Load returns the persisted settings.
	// Returns ErrNotFound when nothing has been saved yet.
	Load(ctx context.Context) (Settings, error)

	// Save persists the given settings, replacing any previous value.
	Save(ctx context.Context, s Settings) error
}

// Memory is an in-process Store, used in tests and as the fallback when
// no persistence is configured.
type Memory struct {
	mu    sync.RWMutex
	s     Settings
	saved bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns the stored settings, or ErrNotFound before the first Save.
func (m *Memory) Load(_ context.Context) (Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.saved {
		return Settings{}, ErrNotFound
	}
	return m.s, nil
}

// Save replaces the stored settings.
func (m *Memory) Save(_ context.Context, s Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.s = s
	m.saved = true
	return nil
}

var _ Store = (*Memory)(nil)
