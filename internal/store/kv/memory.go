package kv

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps everything in a map. Nothing survives a restart; it is
// meant for development nodes and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrClosed
	}
	value, ok := m.data[string(key)]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return slices.Clone(value), nil
}

func (m *MemoryStore) Put(_ context.Context, key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.data[string(key)] = slices.Clone(value)
	return nil
}

func (m *MemoryStore) PutIfAbsent(_ context.Context, key, value []byte) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false, ErrClosed
	}
	if _, ok := m.data[string(key)]; ok {
		return false, nil
	}
	m.data[string(key)] = slices.Clone(value)
	return true, nil
}

func (m *MemoryStore) Remove(_ context.Context, key []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	delete(m.data, string(key))
	return nil
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = nil
	return nil
}
