package kvstore

import (
	"context"
	"sync"
)

// MemoryStore keeps values in process memory. Used for tests and throwaway runs.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	saves  int
}

// NewMemoryStore returns an empty store, optionally seeded with values.
func NewMemoryStore(seed map[string]string) *MemoryStore {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &MemoryStore{values: values}
}

// Load implements Store.
func (s *MemoryStore) Load(ctx context.Context, key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Save implements Store.
func (s *MemoryStore) Save(ctx context.Context, key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.saves++
	return nil
}

// Saves reports how many writes the store has accepted.
func (s *MemoryStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
