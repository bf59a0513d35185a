package store

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore is an in-process store for development and testing.
// Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	lists map[string][]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lists: make(map[string][]string)}
}

func (s *MemoryStore) GetStringList(ctx context.Context, key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.lists[key]), nil
}

func (s *MemoryStore) SetStringList(ctx context.Context, key string, value []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[key] = slices.Clone(value)
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lists, key)
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
