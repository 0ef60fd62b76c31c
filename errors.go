package reactive

import (
	"fmt"

	"github.com/solidkit/reactive/internal"
)

// RunawayClockError is panicked when propagation triggered by a write or
// a freeze release fails to converge within the clock's runaway
// threshold — almost always a cyclic dependency between computations.
type RunawayClockError = internal.RunawayClockError

// ConflictingScheduledValueError is panicked by Write when a signal
// already has a different value scheduled for the next tick.
type ConflictingScheduledValueError struct {
	Pending any
	New     any
}

func (e *ConflictingScheduledValueError) Error() string {
	return fmt.Sprintf("reactive: write %v conflicts with already-scheduled value %v", e.New, e.Pending)
}

// OrphanComputationError is panicked by New/S when no owner scope
// (Root or enclosing Computation) is installed on the calling goroutine.
type OrphanComputationError struct{}

func (e *OrphanComputationError) Error() string {
	return "reactive: computations must be created from within a Root context"
}
