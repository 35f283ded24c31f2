package stockroom

// EntityQuery is the querying handle a system receives each step. Its single
// purpose is to mediate between the World and systems, keeping systems away
// from the entity table itself.
type EntityQuery struct {
	world *World
}

// All returns a snapshot of every entity live at the moment of the call, in
// ascending id order. The snapshot is not a live view; entities created or
// destroyed afterwards do not affect it.
func (q *EntityQuery) All() *EntitySet {
	q.world.entityMu.Lock()
	defer q.world.entityMu.Unlock()

	entities := make([]Entity, 0, len(q.world.entities))
	for i, live := range q.world.entities {
		if live {
			entities = append(entities, Entity(i))
		}
	}
	return &EntitySet{entities: entities}
}

// EntitySet is an immutable point-in-time sequence of entity ids, usually
// obtained from EntityQuery.All. Systems narrow it with Filter using store
// membership checks as predicates; the set itself knows nothing about
// component types.
type EntitySet struct {
	entities []Entity
}

// Entities returns the backing id slice. Callers must not mutate it.
func (s *EntitySet) Entities() []Entity {
	return s.entities
}

// Len returns the number of entities in the set.
func (s *EntitySet) Len() int {
	return len(s.entities)
}

// Filter returns a new set holding exactly the entities for which pred is
// true, preserving relative order. The receiver is left untouched.
func (s *EntitySet) Filter(pred func(Entity) bool) *EntitySet {
	kept := make([]Entity, 0, len(s.entities))
	for _, e := range s.entities {
		if pred(e) {
			kept = append(kept, e)
		}
	}
	return &EntitySet{entities: kept}
}

// FilterInPlace narrows the receiving set itself, reusing its buffer.
// Semantically equivalent to Filter.
func (s *EntitySet) FilterInPlace(pred func(Entity) bool) *EntitySet {
	kept := s.entities[:0]
	for _, e := range s.entities {
		if pred(e) {
			kept = append(kept, e)
		}
	}
	s.entities = kept
	return s
}
