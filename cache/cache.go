package cache

import "sync"

// Map is a plain in-memory mapping for contexts used from a single
// goroutine. The zero value is ready to use.
type Map[ID comparable, E any] struct {
	entries map[ID]E
}

// Lookup returns the entry for id and whether it is present, so absent
// and zero-valued entries stay distinguishable.
func (m *Map[ID, E]) Lookup(id ID) (E, bool) {
	e, ok := m.entries[id]
	return e, ok
}

// Store records the entry for id. Last write wins.
func (m *Map[ID, E]) Store(id ID, entity E) {
	if m.entries == nil {
		m.entries = make(map[ID]E)
	}
	m.entries[id] = entity
}

// Len returns the number of stored entries.
func (m *Map[ID, E]) Len() int { return len(m.entries) }

// SyncMap is a mapping safe for contexts shared across goroutines.
// The zero value is ready to use.
type SyncMap[ID comparable, E any] struct {
	mu      sync.RWMutex
	entries map[ID]E
}

// Lookup returns the entry for id and whether it is present.
func (m *SyncMap[ID, E]) Lookup(id ID) (E, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[id]
	return e, ok
}

// Store records the entry for id. Last write wins.
func (m *SyncMap[ID, E]) Store(id ID, entity E) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[ID]E)
	}
	m.entries[id] = entity
}

// Len returns the number of stored entries.
func (m *SyncMap[ID, E]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
