package stockroom

// ComponentAccess is the capability handle a system receives each step. It
// grants typed read or write access to the World's component stores, routed
// through the registry lookup. Handles are valid only for the duration of
// one Run call.
type ComponentAccess struct {
	world *World
}

// WriteStore grants mutable access to the store for component type T.
func WriteStore[T any](access *ComponentAccess) (*Store[T], error) {
	return storeFor[T](access.world)
}

// ReadStore grants read-only access to the store for component type T.
func ReadStore[T any](access *ComponentAccess) (ReadView[T], error) {
	s, err := storeFor[T](access.world)
	if err != nil {
		return ReadView[T]{}, err
	}
	return ReadView[T]{store: s}, nil
}

var _ Reader[int] = ReadView[int]{}

// ReadView is a read-only view over a Store. Component values are returned
// by copy, so holders cannot mutate the underlying data.
type ReadView[T any] struct {
	store *Store[T]
}

func (v ReadView[T]) Size() int {
	return v.store.Size()
}

func (v ReadView[T]) Has(entity Entity) bool {
	return v.store.Has(entity)
}

func (v ReadView[T]) Get(entity Entity) (T, error) {
	p, err := v.store.Get(entity)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

func (v ReadView[T]) At(index int) T {
	return *v.store.At(index)
}
