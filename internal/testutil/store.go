package testutil

import (
	"errors"
	"sync"

	"github.com/hupe1980/telemetry/core"
)

// ErrInjected is the error returned by FailingStore for failing operations.
var ErrInjected = errors.New("injected store failure")

// FailingStore wraps a core.Store and fails selected operations on demand.
// It also counts writes so tests can assert that nothing was mutated.
type FailingStore struct {
	core.Store

	mu         sync.Mutex
	failGet    bool
	failPut    map[string]bool
	failRemove bool
	writes     int
}

// NewFailingStore wraps inner; no operation fails until configured.
func NewFailingStore(inner core.Store) *FailingStore {
	return &FailingStore{Store: inner, failPut: map[string]bool{}}
}

// FailGet toggles Get failures (chainable).
func (s *FailingStore) FailGet(v bool) *FailingStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failGet = v
	return s
}

// FailPut toggles Put failures for key; an empty key matches every key (chainable).
func (s *FailingStore) FailPut(key string, v bool) *FailingStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failPut[key] = v
	return s
}

// FailRemove toggles Remove failures (chainable).
func (s *FailingStore) FailRemove(v bool) *FailingStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failRemove = v
	return s
}

// Writes returns the number of successful Put and Remove calls.
func (s *FailingStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Get implements core.Store.
func (s *FailingStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	fail := s.failGet
	s.mu.Unlock()
	if fail {
		return "", false, ErrInjected
	}
	return s.Store.Get(key)
}

// Put implements core.Store.
func (s *FailingStore) Put(key, value string) error {
	s.mu.Lock()
	fail := s.failPut[""] || s.failPut[key]
	s.mu.Unlock()
	if fail {
		return ErrInjected
	}
	if err := s.Store.Put(key, value); err != nil {
		return err
	}
	s.mu.Lock()
	s.writes++
	s.mu.Unlock()
	return nil
}

// Remove implements core.Store.
func (s *FailingStore) Remove(key string) error {
	s.mu.Lock()
	fail := s.failRemove
	s.mu.Unlock()
	if fail {
		return ErrInjected
	}
	if err := s.Store.Remove(key); err != nil {
		return err
	}
	s.mu.Lock()
	s.writes++
	s.mu.Unlock()
	return nil
}
