package stockroom

import (
	"fmt"
	"reflect"

	"github.com/TheBitDrifter/mask"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Each registered system owns one bit in a mask.Mask, so the scheduler can
// hold at most one system per mask bit.
const maskCapacity = len(mask.Mask{}) * 64

type nodeState int

const (
	stateRegistered nodeState = iota
	stateScheduled
	stateRunning
	stateComplete
)

// systemNode is the task built for one registered system. Each node owns a
// bit position in the step's completion mask; deps holds the bits of every
// system that must finish before this one starts.
type systemNode struct {
	name   string
	bit    uint32
	system System
	deps   mask.Mask
	state  nodeState
}

type stepResult struct {
	node *systemNode
	err  error
}

// RegisterSystem records system as one task in the step graph. Systems are
// keyed by type (pointer registrations are keyed by the pointed-to type);
// registering the same system type twice fails with
// DuplicateSystemTypeError. Registration order has no effect on execution
// order; use Precede for ordering.
//
// The scheduler tracks tasks in a fixed-width bitmask; once every bit is
// taken, further registrations fail with SystemLimitError carrying the limit.
func (w *World) RegisterSystem(system System) error {
	w.systemMu.Lock()
	defer w.systemMu.Unlock()

	key := systemKey(reflect.TypeOf(system))
	if _, exists := w.systems[key]; exists {
		return DuplicateSystemTypeError{Type: key}
	}
	if len(w.order) >= maskCapacity {
		return SystemLimitError{Limit: maskCapacity}
	}
	node := &systemNode{
		name:   key.String(),
		bit:    uint32(len(w.order)),
		system: system,
		state:  stateRegistered,
	}
	w.systems[key] = node
	w.order = append(w.order, node)
	w.log.Debug("system registered", zap.String("system", node.name))
	return nil
}

// Precede declares that Before's task must finish before After's task
// starts, in every step. Both types must already be registered. The edges
// must stay acyclic; a cyclic declaration surfaces as CyclicPrecedenceError
// from Run. An edge declared while a step is in flight applies from the
// next step.
func Precede[Before, After any](w *World) error {
	w.systemMu.Lock()
	defer w.systemMu.Unlock()

	beforeKey := systemKey(reflect.TypeFor[Before]())
	afterKey := systemKey(reflect.TypeFor[After]())

	before, ok := w.systems[beforeKey]
	if !ok {
		return UnknownSystemTypeError{Type: beforeKey}
	}
	after, ok := w.systems[afterKey]
	if !ok {
		return UnknownSystemTypeError{Type: afterKey}
	}
	after.deps.Mark(before.bit)
	return nil
}

// Run executes one full simulation step: every registered system exactly
// once, with maximal parallelism subject to the declared precedence edges.
// A task starts only after all its predecessors have completed; tasks with
// no ordering relationship may run concurrently, bounded by the worker
// limit. Run blocks until the whole graph has drained.
//
// A system error or panic does not interrupt the step. Independent tasks
// still run; every failure is wrapped in a SystemRunError identifying the
// failed system and the combined result is returned once the graph drains.
func (w *World) Run() error {
	// Snapshot the graph, edges included, so a Precede declared while the
	// step is running takes effect from the next step instead of racing.
	w.systemMu.Lock()
	nodes := make([]*systemNode, len(w.order))
	copy(nodes, w.order)
	deps := make([]mask.Mask, len(nodes))
	for i, n := range nodes {
		n.state = stateScheduled
		deps[i] = n.deps
	}
	w.systemMu.Unlock()

	if len(nodes) == 0 {
		return nil
	}
	w.log.Debug("step started", zap.Int("systems", len(nodes)))

	sem := make(chan struct{}, w.workers)
	finished := make(chan stepResult, len(nodes))

	var done mask.Mask
	completed := 0
	running := 0
	var errs []error

	for completed < len(nodes) {
		for i, n := range nodes {
			if n.state == stateScheduled && done.ContainsAll(deps[i]) {
				n.state = stateRunning
				running++
				go w.runSystem(n, sem, finished)
			}
		}
		if running == 0 {
			// Nothing in flight and nothing launchable: the remaining
			// nodes wait on each other.
			stalled := make([]string, 0, len(nodes)-completed)
			for _, n := range nodes {
				if n.state != stateComplete {
					stalled = append(stalled, n.name)
				}
			}
			errs = append(errs, CyclicPrecedenceError{Stalled: stalled})
			break
		}

		res := <-finished
		res.node.state = stateComplete
		done.Mark(res.node.bit)
		completed++
		running--
		if res.err != nil {
			errs = append(errs, SystemRunError{System: res.node.name, Err: res.err})
			w.log.Error("system failed",
				zap.String("system", res.node.name),
				zap.Error(res.err))
		}
	}

	w.log.Debug("step finished",
		zap.Int("completed", completed),
		zap.Int("failures", len(errs)))
	return multierr.Combine(errs...)
}

// runSystem is the task body: acquire a worker slot, build the capability
// handles, invoke the system, and report the outcome. A panicking system is
// reported as a failed task rather than tearing down the step.
func (w *World) runSystem(node *systemNode, sem chan struct{}, finished chan<- stepResult) {
	sem <- struct{}{}
	defer func() { <-sem }()

	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		finished <- stepResult{node: node, err: err}
	}()

	access := &ComponentAccess{world: w}
	query := &EntityQuery{world: w}
	err = node.system.Run(access, query)
}

// systemKey normalizes a system's type to its value type, so registering
// *PhysicsSystem and declaring Precede[PhysicsSystem, ...] agree on the key.
func systemKey(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
