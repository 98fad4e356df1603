package repository

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStorage keeps the kv table in a process-local map. Used by tests
// and by STORE_BACKEND=memory for running without Postgres.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]json.RawMessage)}
}

func (m *MemoryStorage) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}

	out := make(json.RawMessage, len(value))
	copy(out, value)
	return out, true, nil
}

func (m *MemoryStorage) Set(ctx context.Context, key string, value json.RawMessage) error {
	stored := make(json.RawMessage, len(value))
	copy(stored, value)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = stored
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}
