package sieve

import (
	"math/big"

	"github.com/katalvlaran/primal/core"
)

// Generator is a core.Generator cursor over a Cache: Succ walks the
// cached primes in order, extending the cache as the cursor outruns it.
// Every emitted value is prime and the sequence is strictly increasing.
//
// The underlying Cache may be shared; the Generator itself is a private
// cursor and must not be used from more than one goroutine.
type Generator struct {
	core.Limit
	cache *Cache
	idx   int
}

// NewGenerator returns a cursor over the shared Default cache,
// positioned before the first prime.
func NewGenerator() *Generator {
	return &Generator{cache: Default()}
}

// NewGeneratorOn returns a cursor over a specific Cache. Useful when a
// test or a short-lived computation wants cache growth in isolation.
func NewGeneratorOn(c *Cache) *Generator {
	return &Generator{cache: c}
}

// Succ advances the cursor and returns the next prime as a fresh big.Int.
func (g *Generator) Succ() *big.Int {
	p := g.cache.NthPrime(g.idx)
	g.idx++

	return new(big.Int).SetUint64(p)
}

// Rewind resets the cursor to the first prime. The cache keeps whatever
// it has materialized; rewinding never discards work.
func (g *Generator) Rewind() { g.idx = 0 }
