package mode_test

import (
	"fmt"

	"vecop-generator/internal/mode"
)

func Example() {
	for _, m := range mode.All() {
		fmt.Println(m, m.Token(), m.TypeExpr("Vector", "T"), m.ArgExpr("v"))
	}

	fmt.Println(mode.None, mode.OperandMode(7))
	// Output:
	// owned Val Vector[T] v
	// borrowed Ref *Vector[T] &v
	// mutable-borrow Mut *Vector[T] &v
	// none OperandMode(7)
}
