package config

import "sync"

// Store holds the live Settings. Reads are non-blocking in-memory copies so
// the engine loop can consult them on every tick without I/O.
type Store struct {
	mu sync.RWMutex
	s  Settings
}

func NewStore(initial Settings) *Store {
	return &Store{s: initial}
}

// Current returns a copy of the settings.
func (st *Store) Current() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s
}

// Replace swaps in a full new settings value.
func (st *Store) Replace(s Settings) {
	st.mu.Lock()
	st.s = s
	st.mu.Unlock()
}
