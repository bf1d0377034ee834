package numbers_test

import (
	"fmt"
	"math"

	"github.com/nrx/numbers"
	"github.com/nrx/numbers/validate"
)

// ExampleSolver_Solve runs a tiny board and prints the resulting expression.
func ExampleSolver_Solve() {
	s, err := numbers.New(25000, 15000)
	if err != nil {
		panic(err)
	}

	tiles := []uint32{2, 2}
	sol, err := s.Solve(4, tiles, math.MaxUint16)
	if err != nil {
		panic(err)
	}

	fmt.Println("value:", sol.Value)

	_, err = validate.Validate(4, tiles, sol.Ops, func(op validate.Operation) {
		fmt.Printf("%d %c %d = %d\n", op.Left, op.OpChar, op.Right, op.Result)
	})
	if err != nil {
		panic(err)
	}

	// Output:
	// value: 4
	// 2 + 2 = 4
}
