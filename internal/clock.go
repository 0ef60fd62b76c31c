package internal

import (
	"fmt"
	"weak"
)

// DefaultRunawayThreshold is the maximum number of ticks a single
// event() drain may take before it is considered a divergent update
// loop.
const DefaultRunawayThreshold = 1000

// RunawayClockError is panicked by Clock.event when propagation fails
// to converge within RunawayThreshold ticks inside one drain.
type RunawayClockError struct {
	Ticks     uint64
	Threshold int
}

func (e *RunawayClockError) Error() string {
	return fmt.Sprintf("reactive: runaway clock detected after %d ticks (threshold %d)", e.Ticks, e.Threshold)
}

// Clock is the per-goroutine propagation engine: it turns any number of
// cascading schedules into a single ordered, convergent fixed-point
// drain. It is never shared across goroutines.
type Clock struct {
	time   uint64
	frozen int

	scheduled []weak.Pointer[Node]

	// RunawayThreshold overrides DefaultRunawayThreshold when positive.
	RunawayThreshold int
}

// NewClock returns a fresh Clock with logical time starting at 1, as
// required so computations (which start stale) are distinguishable from
// "never ticked".
func NewClock() *Clock {
	return &Clock{time: 1}
}

// Time returns the current logical time.
func (c *Clock) Time() uint64 { return c.time }

func (c *Clock) threshold() int {
	if c.RunawayThreshold > 0 {
		return c.RunawayThreshold
	}
	return DefaultRunawayThreshold
}

// ScheduleOne appends n to the pending queue and drives the clock.
func (c *Clock) ScheduleOne(n *Node) {
	c.scheduled = append(c.scheduled, weak.Make(n))
	c.event()
}

// ConsumeAndScheduleAll marks every resolvable, live observer in
// *observers stale, drains *observers into the pending queue (observers
// is left empty), and drives the clock. A weak.Pointer whose referent
// has already been collected, or whose referent is marked Dead (a
// disposed computation, regardless of whether GC has run yet), is not
// marked stale; it is still queued, and event() skips it when draining
// the batch. Observers that re-read their dependency
// during their next execution will re-register themselves.
func (c *Clock) ConsumeAndScheduleAll(observers *[]weak.Pointer[Node]) {
	batch := *observers
	*observers = nil

	for _, ref := range batch {
		if n := ref.Value(); n != nil && !n.Dead {
			n.Stale = true
		}
	}

	c.scheduled = append(c.scheduled, batch...)
	c.event()
}

// FreezeToken is returned by Freeze; releasing it decrements the freeze
// depth and, if raise is true and depth reaches zero, drives the clock.
type FreezeToken struct {
	clock *Clock
	raise bool
}

// Freeze increments the freeze depth. While frozen, event() returns
// immediately without draining. raise controls whether Release, upon
// bringing the depth to zero, triggers a drain; the internal recursion
// guard inside event() uses raise=false, while the public S.Freeze uses
// raise=true.
func (c *Clock) Freeze(raise bool) *FreezeToken {
	c.frozen++
	return &FreezeToken{clock: c, raise: raise}
}

// Release decrements the freeze depth acquired by the matching Freeze
// call. Only the release that brings the depth to zero can trigger a
// drain, and only if that release was itself raising.
func (t *FreezeToken) Release() {
	t.clock.frozen--
	if t.raise && t.clock.frozen == 0 {
		t.clock.event()
	}
}

// event drains the pending queue to a fixed point: while any node is
// pending, it bumps the logical time, moves the whole pending queue into
// a local batch (so schedules raised while running this batch land in
// the *next* batch, never the current one), and runs every resolvable,
// non-Dead node's Update. Exceeding RunawayThreshold ticks inside one
// drain is a programming error (a cyclic dependency) and panics.
func (c *Clock) event() {
	if c.frozen > 0 {
		return
	}

	guard := c.Freeze(false)
	defer guard.Release()

	startTime := c.time

	for len(c.scheduled) > 0 {
		batch := c.scheduled
		c.scheduled = nil

		c.time++
		if c.time-startTime > uint64(c.threshold()) {
			panic(&RunawayClockError{Ticks: c.time - startTime, Threshold: c.threshold()})
		}

		for _, ref := range batch {
			if n := ref.Value(); n != nil && !n.Dead {
				n.Update()
			}
		}
	}
}
