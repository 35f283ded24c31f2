package stockroom

// Entity is an opaque identifier with no data of its own; its only meaning
// is as a key into component stores.
type Entity uint32

// InvalidEntity is never allocated by a World.
const InvalidEntity Entity = ^Entity(0)

// Entity table growth increment. When no dead slot can be reused, the live
// table grows by this many slots at once.
const entityGrowth = 128

// EntityBuilder chains component attachment onto a freshly created entity:
//
//	entity, err := stockroom.Attach[Velocity](
//		stockroom.Attach[Position](world.CreateEntity()),
//	).Build()
//
// Components are attached eagerly; the builder only defers error reporting
// until Build.
type EntityBuilder struct {
	entity Entity
	world  *World
	err    error
}

// Attach adds a zero-valued component of type T to the entity under
// construction and returns the builder for chaining. The first attachment
// failure is recorded and surfaced by Build; later attachments are skipped.
func Attach[T any](b *EntityBuilder) *EntityBuilder {
	if b.err != nil {
		return b
	}
	if _, err := AddComponent[T](b.world, b.entity); err != nil {
		b.err = err
	}
	return b
}

// Build returns the built entity's id, or the first error recorded while
// attaching components.
func (b *EntityBuilder) Build() (Entity, error) {
	if b.err != nil {
		return InvalidEntity, b.err
	}
	return b.entity, nil
}
