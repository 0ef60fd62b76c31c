package reactive

import (
	"fmt"
	"weak"

	"github.com/solidkit/reactive/internal"
)

// signalCore holds the state shared by Signal and Value: the two differ
// only in valueSemantics, the runtime stand-in for the spec's
// compile-time value_semantics flag (Go generics can't specialize a
// method body per type-parameter value the way a C++ template bool can).
type signalCore[T comparable] struct {
	node *internal.Node

	current    T
	scheduled  T
	hasPending bool

	valueSemantics bool

	observers []weak.Pointer[internal.Node]
}

func newSignalCore[T comparable](initial T, valueSemantics bool) *signalCore[T] {
	c := &signalCore[T]{current: initial, valueSemantics: valueSemantics}
	c.node = &internal.Node{Update: c.swap}
	return c
}

// Dispose satisfies internal.Disposable. A signal owns nothing of its
// own to release; forgetting it (dropping the owner's reference) is
// enough, since observer references to it are weak.
func (c *signalCore[T]) Dispose() {}

// depend records a dependency on the currently installed owner/observer.
// Called by every operation that reads the value (Read, comparisons,
// arithmetic, String) — never by Write.
func (c *signalCore[T]) depend() {
	state := internal.CurrentState()

	if state.CurrentOwner != nil {
		state.CurrentOwner.Attach(c)
	}

	if state.CurrentObserver != nil {
		c.observers = append(c.observers, weak.Make(state.CurrentObserver))
	}
}

func (c *signalCore[T]) read() T {
	c.depend()
	return c.current
}

func (c *signalCore[T]) sample() T {
	return c.current
}

// write schedules v for the next tick, applying the conflict and
// equality-suppression rules spec.md §4.2 describes for plain vs. value
// signals.
func (c *signalCore[T]) write(v T) {
	if c.hasPending {
		if v != c.scheduled {
			panic(&ConflictingScheduledValueError{Pending: c.scheduled, New: v})
		}
		return
	}

	if c.valueSemantics && v == c.current {
		return
	}

	c.scheduled = v
	c.hasPending = true
	internal.CurrentState().Clock.ScheduleOne(c.node)
}

// swap is the signal's scheduled update action: it moves the pending
// value into current and drains the observer list into the clock.
func (c *signalCore[T]) swap() {
	if !c.hasPending {
		return
	}

	c.hasPending = false
	c.current = c.scheduled
	var zero T
	c.scheduled = zero

	internal.CurrentState().Clock.ConsumeAndScheduleAll(&c.observers)
}

// Signal is a plain reactive cell: every write schedules and notifies
// observers, even when the new value equals the current one.
type Signal[T comparable] struct {
	core *signalCore[T]
}

// NewSignal creates a plain signal holding initial.
func NewSignal[T comparable](initial T) *Signal[T] {
	return &Signal[T]{core: newSignalCore(initial, false)}
}

// NewSignalZero creates a plain signal holding T's zero value.
func NewSignalZero[T comparable]() *Signal[T] {
	var zero T
	return NewSignal(zero)
}

// Read returns the current value, recording a dependency on the current
// owner/observer if one is installed.
func (s *Signal[T]) Read() T { return s.core.read() }

// Sample returns the current value without recording a dependency.
func (s *Signal[T]) Sample() T { return s.core.sample() }

// Write schedules v for the next tick. Panics with
// *ConflictingScheduledValueError if a different value is already
// pending for this tick.
func (s *Signal[T]) Write(v T) { s.core.write(v) }

// String reads the signal (recording a dependency) and formats the
// result, the "stream output" surface named in spec.md §6.
func (s *Signal[T]) String() string { return fmt.Sprint(s.Read()) }

// Value is an equality-suppressed reactive cell: writing the value it
// already holds is a no-op and does not reschedule dependents.
type Value[T comparable] struct {
	core *signalCore[T]
}

// NewValue creates a value-semantics signal holding initial.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{core: newSignalCore(initial, true)}
}

// NewValueZero creates a value-semantics signal holding T's zero value.
func NewValueZero[T comparable]() *Value[T] {
	var zero T
	return NewValue(zero)
}

func (v *Value[T]) Read() T { return v.core.read() }

func (v *Value[T]) Sample() T { return v.core.sample() }

// Write behaves like Signal.Write, except that when no value is pending
// it is a no-op if newVal equals the currently settled value.
func (v *Value[T]) Write(newVal T) { v.core.write(newVal) }

func (v *Value[T]) String() string { return fmt.Sprint(v.Read()) }
