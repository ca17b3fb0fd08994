// This file implements the shared bounded-iteration behavior layered
// once over the Generator interface. No concrete variant re-implements
// bounding; each only stores and reports its Limit.
package core

import (
	"errors"
	"math/big"
)

// Each pulls values from g and passes each to fn, in ascending order,
// while the value does not exceed g.Bound(); with a nil bound the
// iteration is endless and stops only when fn returns an error.
//
// fn may return ErrStop to end the walk early; Each swallows ErrStop
// and returns nil. Any other error aborts the walk and is returned
// unchanged. Each does not Rewind g: iteration continues from the
// cursor's current position, and a second Each call resumes where the
// first stopped.
//
// Complexity: O(k) Succ calls for k yielded values, plus whatever each
// Succ costs in the underlying source.
func Each(g Generator, fn func(p *big.Int) error) error {
	if g == nil {
		return ErrNilGenerator
	}

	bound := g.Bound()
	for {
		p := g.Succ()
		if bound != nil && p.Cmp(bound) > 0 {
			return nil
		}
		if err := fn(p); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}

			return err
		}
	}
}

// Collect drains a bounded generator into a slice. It refuses a
// boundless generator with ErrUnbounded rather than looping forever.
func Collect(g Generator) ([]*big.Int, error) {
	if g == nil {
		return nil, ErrNilGenerator
	}
	if g.Bound() == nil {
		return nil, ErrUnbounded
	}

	var out []*big.Int
	// Each cannot fail here: the visitor never errors and g is bounded.
	_ = Each(g, func(p *big.Int) error {
		out = append(out, p)

		return nil
	})

	return out, nil
}
