package stockroom

import (
	"fmt"
	"reflect"
)

type DuplicateComponentTypeError struct {
	Type reflect.Type
}

func (e DuplicateComponentTypeError) Error() string {
	return fmt.Sprintf("component type already registered: %v", e.Type)
}

type UnregisteredComponentTypeError struct {
	Type reflect.Type
}

func (e UnregisteredComponentTypeError) Error() string {
	return fmt.Sprintf("component type not registered: %v", e.Type)
}

type DuplicateComponentError struct {
	Entity Entity
}

func (e DuplicateComponentError) Error() string {
	return fmt.Sprintf("entity %d already has a component in this store", e.Entity)
}

type MissingComponentError struct {
	Entity Entity
}

func (e MissingComponentError) Error() string {
	return fmt.Sprintf("entity %d does not have a component in this store", e.Entity)
}

type DuplicateSystemTypeError struct {
	Type reflect.Type
}

func (e DuplicateSystemTypeError) Error() string {
	return fmt.Sprintf("system type already registered: %v", e.Type)
}

type UnknownSystemTypeError struct {
	Type reflect.Type
}

func (e UnknownSystemTypeError) Error() string {
	return fmt.Sprintf("system type not registered: %v", e.Type)
}

// SystemLimitError is returned by RegisterSystem when the scheduler's
// completion mask has no bit left for another system.
type SystemLimitError struct {
	Limit int
}

func (e SystemLimitError) Error() string {
	return fmt.Sprintf("system limit reached: the scheduler supports at most %d systems", e.Limit)
}

// SystemRunError carries a failure out of a scheduled step, identifying the
// system whose Run returned an error or panicked.
type SystemRunError struct {
	System string
	Err    error
}

func (e SystemRunError) Error() string {
	return fmt.Sprintf("system %s failed: %v", e.System, e.Err)
}

func (e SystemRunError) Unwrap() error {
	return e.Err
}

// CyclicPrecedenceError is returned by Run when the declared precedence
// edges form a cycle and the task graph cannot drain.
type CyclicPrecedenceError struct {
	Stalled []string
}

func (e CyclicPrecedenceError) Error() string {
	return fmt.Sprintf("cyclic precedence declaration, stalled systems: %v", e.Stalled)
}
