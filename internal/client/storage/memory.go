package storage

import (
	"context"
	"sync"
)

// MemoryStore is a CredentialStore that lives as long as the process.
// It backs the transient half of the login flow.
type MemoryStore struct {
	values map[string]string
	mu     sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value
func (m *MemoryStore) Get(_ context.Context, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[name]
	if !ok {
		return "", ErrCredentialNotFound
	}
	return v, nil
}

// Set stores the value
func (m *MemoryStore) Set(_ context.Context, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[name] = value
	return nil
}

// Delete removes the value
func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, name)
	return nil
}
