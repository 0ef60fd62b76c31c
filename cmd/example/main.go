// Command example demonstrates the reactive package with plain signals
// only: a chained computation and a write made under S.Freeze. Value
// signals are not used.
package main

import (
	"fmt"

	"github.com/solidkit/reactive"
)

func main() {
	reactive.NewRoot(func() {
		i := reactive.NewSignal(1)
		i10 := reactive.NewSignal(0)
		result := reactive.NewSignal("")

		reactive.S(func() {
			i10.Write(i.Read() * 10)
		})

		reactive.S(func() {
			result.Write(fmt.Sprintf("result: %d", i10.Read()))
		})

		fmt.Println(result.Read())

		i.Write(14)
		fmt.Println(result.Read())

		fmt.Println("\nWriting under S.Freeze so downstream computes once...")
		reactive.S.Freeze(func() {
			i.Write(-150)
		})
		fmt.Println(result.Read())
	})
}
