package repository

import (
	"sync"

	appErrors "github.com/averra-labs/trainhub/pkg/errors"
)

// Store is a slice-backed in-memory collection scanned linearly, sized for
// hundreds to low thousands of entities. Entities are stored and returned by
// value so callers never alias internal state. Safe for concurrent use.
type Store[T any] struct {
	mu       sync.RWMutex
	entities []T
	kind     string
	id       func(T) int64
}

// NewStore builds a Store for entities whose id is extracted by id. kind
// names the entity in error messages.
func NewStore[T any](kind string, id func(T) int64) *Store[T] {
	return &Store[T]{kind: kind, id: id}
}

// Kind returns the entity name used in error messages.
func (s *Store[T]) Kind() string {
	return s.kind
}

// Add inserts a new entity, rejecting ids already present.
func (s *Store[T]) Add(entity T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id(entity)
	for i := range s.entities {
		if s.id(s.entities[i]) == id {
			return appErrors.DuplicateID(s.kind, id)
		}
	}
	s.entities = append(s.entities, entity)
	return nil
}

// FindByID returns the entity with the given id, reporting presence through
// the second return value.
func (s *Store[T]) FindByID(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.entities {
		if s.id(s.entities[i]) == id {
			return s.entities[i], true
		}
	}
	var zero T
	return zero, false
}

// GetByID returns the entity with the given id or an ENTITY_NOT_FOUND error.
func (s *Store[T]) GetByID(id int64) (T, error) {
	entity, ok := s.FindByID(id)
	if !ok {
		return entity, appErrors.NotFound(s.kind, id)
	}
	return entity, nil
}

// FindAll returns every entity in insertion order. The slice is a fresh
// copy; mutating it never touches the store.
func (s *Store[T]) FindAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.entities))
	copy(out, s.entities)
	return out
}

// Update replaces the stored entity carrying the same id with entity.
func (s *Store[T]) Update(entity T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id(entity)
	for i := range s.entities {
		if s.id(s.entities[i]) == id {
			s.entities[i] = entity
			return nil
		}
	}
	return appErrors.NotFound(s.kind, id)
}

// Exists reports whether an entity with the given id is present.
func (s *Store[T]) Exists(id int64) bool {
	_, ok := s.FindByID(id)
	return ok
}

// Count returns the number of stored entities.
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// DeleteByID removes the entity with the given id, reporting whether
// anything was removed. Freed ids are never reissued by the allocator.
func (s *Store[T]) DeleteByID(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entities {
		if s.id(s.entities[i]) == id {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every entity.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities = nil
}

// filter returns entities matching pred in insertion order.
func (s *Store[T]) filter(pred func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []T
	for i := range s.entities {
		if pred(s.entities[i]) {
			out = append(out, s.entities[i])
		}
	}
	return out
}

// first returns the earliest-inserted entity matching pred.
func (s *Store[T]) first(pred func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.entities {
		if pred(s.entities[i]) {
			return s.entities[i], true
		}
	}
	var zero T
	return zero, false
}

// countWhere counts entities matching pred without copying them out.
func (s *Store[T]) countWhere(pred func(T) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for i := range s.entities {
		if pred(s.entities[i]) {
			n++
		}
	}
	return n
}

// mutate applies fn to the stored entity with the given id under the write
// lock, keeping read-modify-write cycles atomic.
func (s *Store[T]) mutate(id int64, fn func(*T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entities {
		if s.id(s.entities[i]) == id {
			fn(&s.entities[i])
			return nil
		}
	}
	return appErrors.NotFound(s.kind, id)
}
