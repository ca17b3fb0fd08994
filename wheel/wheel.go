package wheel

import (
	"math/big"

	"github.com/katalvlaran/primal/core"
)

// Filter is the mod-2/3 candidate wheel. Its zero value is ready to use.
//
// The cursor starts at 1; successive Succ calls return
// 2, 3, 5, 7, 11, 13, 17, 19, 23, 25, ... — the special-cased head
// 2, 3, 5 followed by alternating steps of +2 and +4, so every value
// after 3 is coprime to 6. The stream is strictly increasing and
// contains every prime, but from 25 on it also contains composites.
type Filter struct {
	prime uint64
	step  uint64 // 0 until the wheel engages at 5, then alternates 2/4
}

// NewFilter returns a Filter positioned before the first candidate.
func NewFilter() *Filter {
	return &Filter{prime: 1}
}

// Succ advances the wheel and returns the next candidate.
func (f *Filter) Succ() uint64 {
	if f.step != 0 {
		f.prime += f.step
		f.step = 6 - f.step

		return f.prime
	}
	switch f.prime {
	case 0, 1:
		f.prime = 2
	case 2:
		f.prime = 3
	case 3:
		f.prime = 5
		f.step = 2
	}

	return f.prime
}

// Rewind resets the wheel to its initial state.
func (f *Filter) Rewind() {
	f.prime = 1
	f.step = 0
}

// Generator adapts Filter to the core.Generator capability, adding the
// shared upper-bound holder. Like every generator it is a private,
// single-goroutine cursor.
type Generator struct {
	core.Limit
	f Filter
}

// New returns a Generator positioned before the first candidate (2).
func New() *Generator {
	return &Generator{f: Filter{prime: 1}}
}

// Succ advances the wheel and returns the next candidate as a fresh big.Int.
func (g *Generator) Succ() *big.Int {
	return new(big.Int).SetUint64(g.f.Succ())
}

// Rewind resets the cursor so the sequence restarts at 2.
func (g *Generator) Rewind() { g.f.Rewind() }
