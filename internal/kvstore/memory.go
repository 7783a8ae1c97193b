package kvstore

import (
	"context"
	"sync"
)

// Memory implements Store using in-memory storage.
// Data is lost when the process exits; intended for tests and demos.
type Memory struct {
	mu sync.RWMutex

	collections map[string][]byte // collection name -> serialized payload
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{
		collections: make(map[string][]byte),
	}
}

// Get returns the payload for a collection.
func (s *Memory) Get(ctx context.Context, collection string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, exists := s.collections[collection]
	if !exists {
		return nil, ErrCollectionNotFound
	}

	// Clone to avoid external modifications
	clone := make([]byte, len(payload))
	copy(clone, payload)

	return clone, nil
}

// Put replaces the payload for a collection.
func (s *Memory) Put(ctx context.Context, collection string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Clone to avoid external modifications
	clone := make([]byte, len(payload))
	copy(clone, payload)
	s.collections[collection] = clone

	return nil
}
