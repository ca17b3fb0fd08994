// This file is the convenience facade: explicit package-level functions
// forwarding to the engine subpackages with their default sources.
// Caches are shared process-wide; generator cursors are created fresh
// per call, so concurrent facade calls never share a cursor.
package primal

import (
	"math/big"

	"github.com/katalvlaran/primal/core"
	"github.com/katalvlaran/primal/factor"
	"github.com/katalvlaran/primal/primality"
	"github.com/katalvlaran/primal/sieve"
)

// IsPrime reports whether n is prime. See primality.IsPrime.
func IsPrime(n *big.Int) bool {
	return primality.IsPrime(n)
}

// NextPrime returns the smallest prime strictly greater than n.
func NextPrime(n *big.Int) *big.Int {
	return primality.NextPrime(n)
}

// PrimeDivision factors v with the default candidate source.
// See factor.PrimeDivision for the pair contract and errors.
func PrimeDivision(v *big.Int) ([]core.Factor, error) {
	return factor.PrimeDivision(v, nil)
}

// IntFromPrimeDivision recomposes factor pairs into their product.
// See factor.IntFromPrimeDivision.
func IntFromPrimeDivision(fs []core.Factor) (*big.Int, error) {
	return factor.IntFromPrimeDivision(fs)
}

// EachPrime walks the primes in ascending order, feeding each to fn.
// With a nil bound the walk is endless until fn returns an error
// (core.ErrStop ends it cleanly); otherwise it covers exactly the
// primes ≤ bound. Each call walks a fresh cursor over the shared
// sieve cache.
func EachPrime(bound *big.Int, fn func(p *big.Int) error) error {
	g := sieve.NewGenerator()
	g.SetBound(bound)

	return core.Each(g, fn)
}

// PrimesUpTo returns the primes ≤ bound in ascending order.
func PrimesUpTo(bound *big.Int) ([]*big.Int, error) {
	g := sieve.NewGenerator()
	g.SetBound(bound)

	return core.Collect(g)
}
