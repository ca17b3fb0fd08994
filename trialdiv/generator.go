package trialdiv

import (
	"math/big"

	"github.com/katalvlaran/primal/core"
)

// Generator is a core.Generator cursor over a Cache. It emits exactly
// the same sequence as sieve.Generator, produced by an unrelated method.
type Generator struct {
	core.Limit
	cache *Cache
	idx   int
}

// NewGenerator returns a cursor over the shared Default cache.
func NewGenerator() *Generator {
	return &Generator{cache: Default()}
}

// NewGeneratorOn returns a cursor over a specific Cache.
func NewGeneratorOn(c *Cache) *Generator {
	return &Generator{cache: c}
}

// Succ advances the cursor and returns the next prime as a fresh big.Int.
func (g *Generator) Succ() *big.Int {
	p := g.cache.Nth(g.idx)
	g.idx++

	return new(big.Int).SetUint64(p)
}

// Rewind resets the cursor to the first prime.
func (g *Generator) Rewind() { g.idx = 0 }
