package store

import (
	"fmt"
	"os"
	"sync"
)

// MemStore keeps resource buffers in memory, keyed by identifier. Useful for
// tests and for pipelines that extract and re-inject bytes themselves.
// Safe for concurrent use.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

// Load returns a copy of the bytes stored under id.
func (m *MemStore) Load(id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[id]
	if !ok {
		return nil, fmt.Errorf("load %s: %w", id, os.ErrNotExist)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save stores a copy of data under id.
func (m *MemStore) Save(id string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	m.data[id] = buf
	return nil
}
