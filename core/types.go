// Package core declares the Generator interface, the Factor type,
// the embeddable Limit bound holder, and the package sentinel errors.
package core

import (
	"errors"
	"math/big"
)

// Sentinel errors shared by the primal packages.
var (
	// ErrNilGenerator indicates a nil Generator was passed where one is required.
	ErrNilGenerator = errors.New("core: generator is nil")

	// ErrUnbounded indicates Collect was called on a generator without an upper bound.
	ErrUnbounded = errors.New("core: generator has no upper bound")

	// ErrZeroDivision indicates a factorization of zero was requested.
	ErrZeroDivision = errors.New("core: cannot factor zero")

	// ErrBadExponent indicates a recomposition met a negative exponent.
	ErrBadExponent = errors.New("core: negative exponent in factor list")

	// ErrStop ends an Each iteration early; Each swallows it and returns nil.
	ErrStop = errors.New("core: stop iteration")
)

// Generator is a stateful cursor over an ascending stream of prime
// candidates. Concrete sources (sieve.Generator, trialdiv.Generator,
// wheel.Generator) guarantee a strictly increasing, duplicate-free
// sequence; sieve and trialdiv additionally guarantee every value is
// prime, while wheel only guarantees a superset of the primes.
//
// A Generator is a private cursor owned by one enumeration. It must not
// be shared across goroutines; create a fresh instance per enumeration.
type Generator interface {
	// Succ advances the cursor and returns the next candidate.
	// The returned value is freshly allocated and owned by the caller.
	Succ() *big.Int

	// Rewind resets the cursor to its initial state, so that the next
	// Succ call restarts the sequence from its first value.
	Rewind()

	// Bound reports the optional inclusive upper bound, or nil when the
	// stream is unbounded.
	Bound() *big.Int

	// SetBound replaces the inclusive upper bound; nil removes it.
	SetBound(b *big.Int)
}

// Factor is one (prime, exponent) pair of a factorization.
// In the output of factor.PrimeDivision the primes are strictly
// increasing and Exp ≥ 1, optionally preceded by a (-1, 1) pseudo-factor
// recording a negative input's sign.
type Factor struct {
	// Prime is the base of this factor. It is -1 only in the sign
	// pseudo-factor of a negative input.
	Prime *big.Int

	// Exp is the multiplicity of Prime.
	Exp int
}

// F builds a Factor from small integers. Test and example helper.
func F(prime int64, exp int) Factor {
	return Factor{Prime: big.NewInt(prime), Exp: exp}
}

// Limit is an embeddable holder for the optional inclusive upper bound,
// so every Generator variant shares a single Bound/SetBound
// implementation instead of re-declaring it.
type Limit struct {
	bound *big.Int
}

// Bound reports the current inclusive upper bound, or nil if unset.
func (l *Limit) Bound() *big.Int { return l.bound }

// SetBound replaces the inclusive upper bound; nil removes it.
// The value is copied, so later caller mutation cannot move the bound.
func (l *Limit) SetBound(b *big.Int) {
	if b == nil {
		l.bound = nil
		return
	}
	l.bound = new(big.Int).Set(b)
}
