package sieve_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/primal/core"
	"github.com/katalvlaran/primal/sieve"
)

// ExampleCache_NthPrime asks the shared cache for a few ranks; the
// cache sieves exactly as many segments as the largest rank demands.
func ExampleCache_NthPrime() {
	c := sieve.New()
	fmt.Println(c.NthPrime(0), c.NthPrime(24), c.NthPrime(99))
	// Output:
	// 2 97 541
}

// ExampleGenerator walks the primes between 80 and 120 by bounding a
// cursor and skipping below the window.
func ExampleGenerator() {
	g := sieve.NewGenerator()
	g.SetBound(big.NewInt(120))

	_ = core.Each(g, func(p *big.Int) error {
		if p.Int64() >= 80 {
			fmt.Println(p)
		}

		return nil
	})
	// Output:
	// 83
	// 89
	// 97
	// 101
	// 103
	// 107
	// 109
	// 113
}
