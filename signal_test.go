package reactive_test

import (
	"fmt"

	"github.com/solidkit/reactive"
)

// Scenario 1 from spec.md §8: basic write/read.
func ExampleSignal_basic() {
	s := reactive.NewSignal(0)
	fmt.Println(s.Read())

	s.Write(10)
	fmt.Println(s.Read())

	s.Write(15)
	fmt.Println(s.Read())

	// Output:
	// 0
	// 10
	// 15
}

// Scenario 2 from spec.md §8: a chained computation.
func ExampleSignal_chainedComputation() {
	reactive.NewRoot(func() {
		i := reactive.NewSignal(0)
		i10 := reactive.NewSignal(0)
		res := reactive.NewSignal("")

		reactive.S(func() {
			i10.Write(i.Read() * 10)
		})
		reactive.S(func() {
			res.Write(fmt.Sprintf("result: %d", i10.Read()))
		})

		i.Write(14)
		fmt.Println(i10.Read(), res.Read())

		i.Write(-150)
		fmt.Println(i10.Read(), res.Read())
	})

	// Output:
	// 140 result: 140
	// -1500 result: -1500
}

// Scenario 3 from spec.md §8: value-signal equality suppression.
func ExampleValue_suppression() {
	reactive.NewRoot(func() {
		v := reactive.NewValue(0)
		n := reactive.NewSignal(0)

		reactive.S(func() {
			v.Read()
			n.Write(n.Sample() + 1)
		})

		fmt.Println(n.Read())

		v.Write(0) // current value: no-op
		fmt.Println(n.Read())

		v.Write(1)
		fmt.Println(n.Read())

		v.Write(1) // already-settled value: no-op again
		fmt.Println(n.Read())
	})

	// Output:
	// 1
	// 1
	// 2
	// 2
}
