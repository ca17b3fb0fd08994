package factor_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/primal/core"
	"github.com/katalvlaran/primal/factor"
	"github.com/katalvlaran/primal/sieve"
)

// ExamplePrimeDivision factors a negative value: the sign travels as a
// leading (-1, 1) pseudo-factor.
func ExamplePrimeDivision() {
	fs, err := factor.PrimeDivision(big.NewInt(-360), nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, f := range fs {
		fmt.Printf("(%v, %d)\n", f.Prime, f.Exp)
	}
	// Output:
	// (-1, 1)
	// (2, 3)
	// (3, 2)
	// (5, 1)
}

// ExamplePrimeDivision_generator feeds the factorizer from the
// sieve-backed true-prime source instead of the default wheel; the
// result is identical.
func ExamplePrimeDivision_generator() {
	fs, err := factor.PrimeDivision(big.NewInt(1001), sieve.NewGenerator())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, f := range fs {
		fmt.Printf("(%v, %d)\n", f.Prime, f.Exp)
	}
	// Output:
	// (7, 1)
	// (11, 1)
	// (13, 1)
}

// ExampleIntFromPrimeDivision folds prime powers back into an integer.
func ExampleIntFromPrimeDivision() {
	v, err := factor.IntFromPrimeDivision([]core.Factor{
		core.F(2, 3), core.F(3, 2), core.F(5, 1),
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(v)
	// Output:
	// 360
}
