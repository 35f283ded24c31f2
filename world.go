package stockroom

import (
	"reflect"
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// World is the host for all ECS data: the entity table, one component store
// per registered type, and the system task graph. Multiple independent
// Worlds may coexist in one process.
//
// The entity table and the component-store map are guarded by separate
// locks. Entity creation and destruction hold them for short critical
// sections only and never block on system execution. Component data itself
// is not locked; concurrent systems touching the same store must be ordered
// with Precede.
type World struct {
	log     *zap.Logger
	workers int

	entityMu sync.Mutex
	entities []bool // live bit per id

	componentMu sync.Mutex
	components  map[reflect.Type]storage

	systemMu sync.Mutex
	systems  map[reflect.Type]*systemNode
	order    []*systemNode
}

// NewWorld returns an empty World. By default it logs nothing and allows up
// to runtime.NumCPU() systems to execute concurrently per step.
func NewWorld(opts ...Option) *World {
	w := &World{
		log:        zap.NewNop(),
		workers:    runtime.NumCPU(),
		components: make(map[reflect.Type]storage),
		systems:    make(map[reflect.Type]*systemNode),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// RegisterComponent creates an empty Store for component type T. It must be
// called before any entity is given a T component. Fails with
// DuplicateComponentTypeError if T was already registered; the existing
// store is left untouched.
func RegisterComponent[T any](w *World) error {
	key := reflect.TypeFor[T]()

	w.componentMu.Lock()
	defer w.componentMu.Unlock()

	if _, exists := w.components[key]; exists {
		return DuplicateComponentTypeError{Type: key}
	}
	w.components[key] = newStore[T]()
	w.log.Debug("component type registered", zap.Stringer("type", key))
	return nil
}

// AddComponent attaches a zero-valued T to entity, delegating to the
// registered store's Add. Held under the component-table lock so the
// insertion cannot interleave with an entity destruction purge.
func AddComponent[T any](w *World, entity Entity) (*T, error) {
	key := reflect.TypeFor[T]()

	w.componentMu.Lock()
	defer w.componentMu.Unlock()

	s, ok := w.components[key]
	if !ok {
		return nil, UnregisteredComponentTypeError{Type: key}
	}
	return s.(*Store[T]).Add(entity)
}

// GetComponent returns a pointer to entity's T component.
func GetComponent[T any](w *World, entity Entity) (*T, error) {
	s, err := storeFor[T](w)
	if err != nil {
		return nil, err
	}
	return s.Get(entity)
}

// HasComponent reports whether entity has a T component.
func HasComponent[T any](w *World, entity Entity) (bool, error) {
	s, err := storeFor[T](w)
	if err != nil {
		return false, err
	}
	return s.Has(entity), nil
}

// ComponentCount returns the number of T components currently stored.
func ComponentCount[T any](w *World) (int, error) {
	s, err := storeFor[T](w)
	if err != nil {
		return 0, err
	}
	return s.Size(), nil
}

// ComponentAt returns the T component in dense slot index. Slot indices come
// from the store itself; index must be < ComponentCount[T].
func ComponentAt[T any](w *World, index int) (*T, error) {
	s, err := storeFor[T](w)
	if err != nil {
		return nil, err
	}
	return s.At(index), nil
}

// CreateEntity allocates an entity id, reusing a dead slot when one exists
// and growing the table by a fixed increment otherwise, and returns a
// builder for chaining component attachments.
func (w *World) CreateEntity() *EntityBuilder {
	w.entityMu.Lock()
	defer w.entityMu.Unlock()

	id := InvalidEntity
	for i := range w.entities {
		if !w.entities[i] {
			id = Entity(i)
			break
		}
	}
	if id == InvalidEntity {
		id = Entity(len(w.entities))
		w.entities = append(w.entities, make([]bool, entityGrowth)...)
	}
	w.entities[id] = true
	return &EntityBuilder{entity: id, world: w}
}

// DestroyEntity removes entity's component from every registered store that
// holds one and marks the id dead and eligible for reuse. The component
// table lock is held for the whole purge, so no store is structurally
// mutated by another goroutine while the entity's components are scrubbed.
//
// Destroying an id that is already dead (or was never allocated) is a
// silent no-op.
func (w *World) DestroyEntity(entity Entity) {
	w.componentMu.Lock()
	defer w.componentMu.Unlock()
	w.entityMu.Lock()
	defer w.entityMu.Unlock()

	if int(entity) >= len(w.entities) || !w.entities[entity] {
		return
	}
	for _, s := range w.components {
		if s.Has(entity) {
			_ = s.Remove(entity)
		}
	}
	w.entities[entity] = false
}

// Reset returns the World to its just-constructed state: all entities, all
// component stores, and all registered systems are dropped. Component and
// system types are un-registered as well; a fresh RegisterComponent /
// RegisterSystem cycle afterwards behaves exactly as on a new World.
func (w *World) Reset() {
	w.systemMu.Lock()
	defer w.systemMu.Unlock()
	w.componentMu.Lock()
	defer w.componentMu.Unlock()
	w.entityMu.Lock()
	defer w.entityMu.Unlock()

	w.entities = nil
	w.components = make(map[reflect.Type]storage)
	w.systems = make(map[reflect.Type]*systemNode)
	w.order = nil
	w.log.Debug("world reset")
}

func storeFor[T any](w *World) (*Store[T], error) {
	key := reflect.TypeFor[T]()

	w.componentMu.Lock()
	s, ok := w.components[key]
	w.componentMu.Unlock()

	if !ok {
		return nil, UnregisteredComponentTypeError{Type: key}
	}
	return s.(*Store[T]), nil
}
