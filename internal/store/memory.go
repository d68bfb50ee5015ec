package store

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string]string),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, readError(key, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.docs[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return writeError("set", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[key] = value
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return writeError("remove", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, key)
	return nil
}
