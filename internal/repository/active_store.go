package repository

// ActiveStore extends Store for entities carrying an active flag. The flag
// is reached through capability functions supplied at construction, so
// entity types stay plain structs with no shared base.
type ActiveStore[T any] struct {
	*Store[T]
	active    func(T) bool
	setActive func(*T, bool)
}

// NewActiveStore builds an ActiveStore from id, active and setActive
// capabilities.
func NewActiveStore[T any](kind string, id func(T) int64, active func(T) bool, setActive func(*T, bool)) *ActiveStore[T] {
	return &ActiveStore[T]{
		Store:     NewStore[T](kind, id),
		active:    active,
		setActive: setActive,
	}
}

// FindAllActive returns active entities in insertion order.
func (s *ActiveStore[T]) FindAllActive() []T {
	return s.filter(s.active)
}

// CountActive counts active entities without materializing them.
func (s *ActiveStore[T]) CountActive() int {
	return s.countWhere(s.active)
}

// Activate sets the active flag on the entity with the given id. Activating
// an already active entity is a no-op.
func (s *ActiveStore[T]) Activate(id int64) error {
	return s.mutate(id, func(entity *T) {
		s.setActive(entity, true)
	})
}

// Deactivate clears the active flag on the entity with the given id.
// Deactivating an already inactive entity is a no-op.
func (s *ActiveStore[T]) Deactivate(id int64) error {
	return s.mutate(id, func(entity *T) {
		s.setActive(entity, false)
	})
}
