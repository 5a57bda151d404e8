// Package store persists per-session todo lists.
//
// Lists are keyed by an opaque session identifier. Reading a session with
// no stored todos yields an empty list, not an error, and every write
// replaces the session's whole list.
package store

import (
	"sort"
	"sync"

	"todopanel/internal/todo"
)

// Store is the storage contract the panel consumes. Implementations other
// than the panel may mutate a session's list at any time; the panel always
// re-reads instead of caching.
type Store interface {
	GetTodoList(sessionID string) ([]todo.Record, error)
	SetTodoList(sessionID string, items []todo.Record) error
}

// MemStore keeps todo lists in memory. It is the default backend for the
// demo host and the workhorse for tests.
type MemStore struct {
	mu    sync.Mutex
	lists map[string][]todo.Record
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{lists: make(map[string][]todo.Record)}
}

// GetTodoList returns a copy of the session's list, empty if none stored.
func (s *MemStore) GetTodoList(sessionID string) ([]todo.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]todo.Record, len(s.lists[sessionID]))
	copy(out, s.lists[sessionID])
	return out, nil
}

// SetTodoList replaces the session's list with a copy of items.
func (s *MemStore) SetTodoList(sessionID string, items []todo.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]todo.Record, len(items))
	copy(cp, items)
	s.lists[sessionID] = cp
	return nil
}

// Sessions returns the session IDs with a stored list, sorted.
func (s *MemStore) Sessions() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.lists))
	for id := range s.lists {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
