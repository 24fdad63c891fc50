// Package memstore is an in-memory storage medium with an optional byte
// quota, standing in for browser local storage in tests.
package memstore

import (
	"errors"
	"sync"
)

var ErrQuotaExceeded = errors.New("memstore: quota exceeded")

type Store struct {
	mu       sync.Mutex
	data     map[string]string
	capacity int // bytes of keys+values; 0 means unbounded
	used     int

	writes int
	failOn map[string]error
}

func New(capacity int) *Store {
	return &Store{data: map[string]string{}, capacity: capacity}
}

func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failOn[key]; ok {
		return err
	}
	old, had := s.data[key]
	used := s.used + len(value)
	if had {
		used -= len(old)
	} else {
		used += len(key)
	}
	if s.capacity > 0 && used > s.capacity {
		return ErrQuotaExceeded
	}
	s.data[key] = value
	s.used = used
	s.writes++
	return nil
}

// Put seeds raw content, bypassing the quota.
func (s *Store) Put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, had := s.data[key]; had {
		s.used -= len(old)
	} else {
		s.used += len(key)
	}
	s.data[key] = value
	s.used += len(value)
}

// FailWrites makes every Set on key return err until cleared with a nil err.
func (s *Store) FailWrites(key string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn == nil {
		s.failOn = map[string]error{}
	}
	if err == nil {
		delete(s.failOn, key)
		return
	}
	s.failOn[key] = err
}

// Writes counts successful Set calls.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *Store) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.used
}
