// Package memory implements the key-value application state store in
// process memory. Nothing survives a restart.
package memory

import (
	"context"
	"maps"
	"sync"
)

// Store is a mutex-guarded map.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Get returns the value under key and whether it exists.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Put overwrites every given key atomically.
func (s *Store) Put(_ context.Context, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	maps.Copy(s.values, values)
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }
