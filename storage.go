package stockroom

var _ storage = &Store[int]{}

// Store is the dense component container for a single component type. All
// components live packed in a single slice; a map keyed by entity id points
// at each owner's current slot. Removal swaps the last component into the
// vacated slot, so the slice never has gaps and removal stays O(1).
//
// A Store is owned by its World for the World's lifetime. Systems reach it
// through ComponentAccess and must not retain it across steps.
type Store[T any] struct {
	index      map[Entity]int
	owners     []Entity
	components []T
}

func newStore[T any]() *Store[T] {
	return &Store[T]{
		index: make(map[Entity]int),
	}
}

// Size returns the number of components currently stored.
func (s *Store[T]) Size() int {
	return len(s.components)
}

// Has reports whether entity owns a component in this store.
func (s *Store[T]) Has(entity Entity) bool {
	_, ok := s.index[entity]
	return ok
}

// Add appends a zero-valued component for entity and returns a pointer to
// it. The pointer stays valid until the next structural mutation of this
// store. Fails with DuplicateComponentError if entity already has one.
func (s *Store[T]) Add(entity Entity) (*T, error) {
	if s.Has(entity) {
		return nil, DuplicateComponentError{Entity: entity}
	}
	var zero T
	s.index[entity] = len(s.components)
	s.components = append(s.components, zero)
	s.owners = append(s.owners, entity)
	return &s.components[len(s.components)-1], nil
}

// Get returns a pointer to entity's component, or MissingComponentError.
func (s *Store[T]) Get(entity Entity) (*T, error) {
	i, ok := s.index[entity]
	if !ok {
		return nil, MissingComponentError{Entity: entity}
	}
	return &s.components[i], nil
}

// Remove deletes entity's component. The last component is swapped into the
// vacated slot and the displaced owner's index entry is rewritten, keeping
// the slice dense without shifting any other element.
func (s *Store[T]) Remove(entity Entity) error {
	i, ok := s.index[entity]
	if !ok {
		return MissingComponentError{Entity: entity}
	}
	last := len(s.components) - 1
	if i != last {
		displaced := s.owners[last]
		s.components[i] = s.components[last]
		s.owners[i] = displaced
		s.index[displaced] = i
	}
	s.components = s.components[:last]
	s.owners = s.owners[:last]
	delete(s.index, entity)
	return nil
}

// At returns a pointer to the component in slot index. Slots are assigned by
// this store; index must be < Size(). Intended for loops walking the dense
// slice directly instead of going through the entity map.
func (s *Store[T]) At(index int) *T {
	return &s.components[index]
}
