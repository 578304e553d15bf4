// Package memory provides in-process repository implementations. State is
// lost when the process exits.
package memory

import (
	"context"
	"sync"

	"github.com/vytor/chronoquest/internal/repository"
)

type kvStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewKeyValueStore creates an empty in-memory KeyValueStore.
func NewKeyValueStore() repository.KeyValueStore {
	return &kvStore{values: make(map[string]string)}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
