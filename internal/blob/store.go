// Package blob provides the key-value blob storage backends that the
// repositories persist whole collections into. Each record is one opaque
// blob under a fixed key; there is no incremental update.
package blob

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when no blob exists under the key.
var ErrNotFound = errors.New("blob: key not found")

// Store is a minimal key-value blob store. Implementations must be safe
// for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

// MemoryStore is an in-memory Store used in tests and as the zero-setup
// default backend.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Get returns a copy of the blob stored under key.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set stores a copy of data under key, replacing any previous blob.
func (s *MemoryStore) Set(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	in := make([]byte, len(data))
	copy(in, data)
	s.blobs[key] = in
	return nil
}
