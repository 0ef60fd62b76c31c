package reactive_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solidkit/reactive"
)

// Scenario 4 from spec.md §8: freeze batching.
func TestFreeze_batching(t *testing.T) {
	t.Run("observers see pre-freeze values until release", func(t *testing.T) {
		var seen []int

		reactive.NewRoot(func() {
			i := reactive.NewSignal(0)
			j := reactive.NewSignal(0)
			k := reactive.NewSignal(0)

			reactive.S(func() { j.Write(i.Read()) })
			reactive.S(func() { k.Write(j.Read()) })

			reactive.S.Freeze(func() {
				i.Write(10)
				seen = append(seen, i.Sample(), j.Sample(), k.Sample())
			})

			assert.Equal(t, []int{0, 0, 0}, seen)
			assert.Equal(t, 10, i.Read())
			assert.Equal(t, 10, j.Read())
			assert.Equal(t, 10, k.Read())
		})
	})

	t.Run("cascade from i wins over a same-tick write to j", func(t *testing.T) {
		reactive.NewRoot(func() {
			i := reactive.NewSignal(0)
			j := reactive.NewSignal(0)
			k := reactive.NewSignal(0)

			reactive.S(func() { j.Write(i.Read()) })
			reactive.S(func() { k.Write(j.Read()) })

			reactive.S.Freeze(func() {
				i.Write(42)
				j.Write(30)
			})

			assert.Equal(t, 42, i.Read())
			assert.Equal(t, 42, j.Read())
			assert.Equal(t, 42, k.Read())
		})
	})
}

// Scenario 5 from spec.md §8: runaway detection.
func TestRunawayClock(t *testing.T) {
	reactive.NewRoot(func() {
		i := reactive.NewSignal(0)
		j := reactive.NewSignal(0)

		defer func() {
			r := recover()
			if assert.NotNil(t, r) {
				_, ok := r.(*reactive.RunawayClockError)
				assert.True(t, ok, "expected *RunawayClockError, got %T", r)
			}
		}()

		reactive.S(func() { i.Write(j.Read() + 1) })
		// The second computation's first run already closes the i -> j -> i
		// cycle, so the clock diverges while it is being created.
		reactive.S(func() { j.Write(i.Read() + 1) })

		i.Write(1)
		t.Fatal("expected a panic before reaching this point")
	})
}

// Scenario 6 from spec.md §8: orphan computation.
func TestOrphanComputation(t *testing.T) {
	defer func() {
		r := recover()
		if assert.NotNil(t, r) {
			_, ok := r.(*reactive.OrphanComputationError)
			assert.True(t, ok, "expected *OrphanComputationError, got %T", r)
		}
	}()

	reactive.New(func() {})
	t.Fatal("expected a panic before reaching this point")
}

// Scenario 7 from spec.md §8: conflicting scheduled value.
func TestConflictingScheduledValue(t *testing.T) {
	reactive.NewRoot(func() {
		s := reactive.NewSignal(0)

		defer func() {
			r := recover()
			if assert.NotNil(t, r) {
				_, ok := r.(*reactive.ConflictingScheduledValueError)
				assert.True(t, ok, "expected *ConflictingScheduledValueError, got %T", r)
			}
		}()

		reactive.S(func() {
			s.Write(10)
			s.Write(10) // idempotent: same as already-scheduled value
			s.Write(40) // conflicts with the scheduled 10
		})

		t.Fatal("expected a panic before reaching this point")
	})
}

// Scenario 8 from spec.md §8: disposal on refresh.
func TestDisposalOnRefresh(t *testing.T) {
	disposals := 0

	reactive.NewRoot(func() {
		count := reactive.NewSignal(0)

		reactive.S(func() {
			inner := reactive.New(func() {})
			inner.OnCleanup(func() { disposals++ })
			count.Read() // make this computation depend on count
		})

		assert.Equal(t, 0, disposals)

		count.Write(1)
		assert.Equal(t, 1, disposals)

		count.Write(2)
		assert.Equal(t, 2, disposals)

		count.Write(3)
		assert.Equal(t, 3, disposals)
	})
}

// A disposed nested computation must never re-fire, even though its
// Node may still be weakly reachable through a dependency's observer
// list at the moment its owner is re-entered — weak.Pointer only
// resolves to nil once an actual GC cycle collects the referent, which
// has no relation to when the computation was disposed.
func TestDisposalIsPermanentRegardlessOfGC(t *testing.T) {
	reactive.NewRoot(func() {
		trigger := reactive.NewSignal(0)
		flag := reactive.NewSignal(0)
		runs := 0

		reactive.S(func() {
			trigger.Read()
			reactive.New(func() {
				flag.Read() // registers this nested computation as flag's observer
				runs++
			})
		})
		assert.Equal(t, 1, runs)

		// Disposes the first nested computation (owner.Clear()) and
		// creates a second one in its place.
		trigger.Write(1)
		assert.Equal(t, 2, runs)

		// Without a Dead tombstone, flag's observer list still holds a
		// weak pointer to the disposed first nested computation (no GC
		// has run to collect it), so this write would resurrect it and
		// run its fn a second time. Only the live second nested
		// computation may react.
		flag.Write(1)
		assert.Equal(t, 3, runs)
	})
}

func ExampleComputation_nestedDisposal() {
	reactive.NewRoot(func() {
		count := reactive.NewSignal(1)

		reactive.S(func() {
			fmt.Println("computing, count =", count.Read())

			reactive.New(func() {
				fmt.Println("nested effect, count =", count.Sample())
			}).OnCleanup(func() {
				fmt.Println("nested cleanup")
			})
		})

		count.Write(2)
	})

	// Output:
	// computing, count = 1
	// nested effect, count = 1
	// nested cleanup
	// computing, count = 2
	// nested effect, count = 2
}
