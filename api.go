package stockroom

// System is the interface every registered system implements. Run is invoked
// exactly once per simulation step with capability handles bound to the
// owning World; the handles are only valid for the duration of the call.
// Systems are free to hold private state captured at construction time.
type System interface {
	Run(access *ComponentAccess, query *EntityQuery) error
}

// storage is the type-erased capability set the World needs from every
// component store regardless of element type. The concrete dense behavior
// lives in Store[T].
type storage interface {
	Size() int
	Has(entity Entity) bool
	Remove(entity Entity) error
}

// Reader is the read-only capability over a component store, as granted by
// ReadStore. Accessors return component values by copy.
type Reader[T any] interface {
	Size() int
	Has(entity Entity) bool
	Get(entity Entity) (T, error)
	At(index int) T
}
