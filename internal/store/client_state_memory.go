package store

import (
	"context"
	"slices"
	"sync"
)

// memoryStateStore keeps state for the lifetime of the process only.
type memoryStateStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStateStore returns an empty in-memory [StateStore].
func NewMemoryStateStore() StateStore {
	return &memoryStateStore{data: make(map[string][]byte)}
}

func (m *memoryStateStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

func (m *memoryStateStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = slices.Clone(value)
	return nil
}

func (m *memoryStateStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *memoryStateStore) Close() error {
	return nil
}
