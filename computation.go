package reactive

import (
	"weak"

	"github.com/solidkit/reactive/internal"
)

// Computation is a derived reaction: a body that re-runs whenever any
// signal it read during its last run changes. It is both an observer
// (of the signals it reads) and an owner (of nested computations and
// signals its body creates), exactly as spec.md §4.3 describes.
type Computation struct {
	owner *internal.Owner
	node  *internal.Node

	fn func()

	// observers is never populated by this package (nothing in its public
	// surface lets a Computation be read directly), but kept so the
	// recompute algorithm is a faithful, literal port of spec.md §4.3
	// step 6 rather than one that special-cases it away.
	observers []weak.Pointer[internal.Node]
}

// New creates a computation in the current owner scope (a Root or an
// enclosing Computation) and schedules its first run on the clock.
// Outside a freeze or a running computation, that run (and everything it
// triggers) completes before New returns. Panics with
// *OrphanComputationError if no owner scope is installed.
func New(fn func()) *Computation {
	state := internal.CurrentState()
	if state.CurrentOwner == nil {
		panic(&OrphanComputationError{})
	}

	c := &Computation{fn: fn}
	c.owner = internal.NewOwner(state.CurrentOwner)
	c.node = &internal.Node{Stale: true, Update: c.recompute}

	state.CurrentOwner.Attach(c)
	state.Clock.ScheduleOne(c.node)

	return c
}

// OnCleanup registers fn to run before this computation's next
// re-execution, and on final disposal, after its owned children have
// been released.
func (c *Computation) OnCleanup(fn func()) {
	c.owner.OnCleanup(fn)
}

// Dispose permanently releases everything this computation owns and
// marks it dead so it can never recompute again, even if its Node is
// still reachable through a pending schedule or a signal's observer
// list at the moment of disposal (a weak.Pointer only resolves to nil
// once an actual GC cycle collects the referent; Dead is the
// deterministic tombstone that doesn't depend on GC timing). Called
// automatically when the enclosing owner is itself cleared or disposed.
func (c *Computation) Dispose() {
	c.node.Dead = true
	c.owner.Clear()
}

// recompute is the computation's Node.Update: clear what the previous
// run owned, install this computation as both current owner and current
// observer, run fn, then schedule whatever depends on this computation
// directly (in this package, nothing does). A disposed computation is permanently inert:
// Dead short-circuits before the staleness check so it can never re-run
// once torn down.
func (c *Computation) recompute() {
	if c.node.Dead {
		return
	}
	if !c.node.Stale {
		return
	}
	c.node.Stale = false

	c.owner.Clear()

	state := internal.CurrentState()
	state.WithOwnerAndObserver(c.owner, c.node, c.fn)

	state.Clock.ConsumeAndScheduleAll(&c.observers)
}
