package factor

import (
	"math/big"

	"github.com/katalvlaran/primal/core"
	"github.com/katalvlaran/primal/wheel"
)

var bigOne = big.NewInt(1)

// PrimeDivision factors v into ordered (prime, exponent) pairs.
//
// The pairs carry strictly increasing primes with exponents ≥ 1; a
// negative v yields a leading (-1, 1) pseudo-factor followed by the
// factorization of |v|. PrimeDivision(1) is the empty factorization.
// Factoring zero fails with core.ErrZeroDivision.
//
// g supplies the candidate stream and may be any ascending superset of
// the primes; nil selects a fresh default wheel.Generator. The generator
// is consumed from its current cursor position — pass a fresh or rewound
// one.
func PrimeDivision(v *big.Int, g core.Generator) ([]core.Factor, error) {
	if v.Sign() == 0 {
		return nil, core.ErrZeroDivision
	}
	if g == nil {
		g = wheel.New()
	}

	var pv []core.Factor
	value := new(big.Int).Set(v)
	if value.Sign() < 0 {
		pv = append(pv, core.Factor{Prime: big.NewInt(-1), Exp: 1})
		value.Neg(value)
	}

	quo := new(big.Int)
	rem := new(big.Int)
	for value.Cmp(bigOne) > 0 {
		p := g.Succ()
		count := 0
		for {
			quo.QuoRem(value, p, rem)
			if rem.Sign() != 0 {
				break
			}
			value.Set(quo)
			count++
		}
		if count != 0 {
			pv = append(pv, core.Factor{Prime: p, Exp: count})
		}
		// The failing quotient ⌊value/p⌋ at or below p means every
		// remaining factor exceeds √value: the value left is 1 or prime.
		if quo.Cmp(p) <= 0 {
			break
		}
	}
	if value.Cmp(bigOne) > 0 {
		pv = append(pv, core.Factor{Prime: value, Exp: 1})
	}

	return pv, nil
}

// IntFromPrimeDivision recomposes a factor list into the integer
// ∏ prime^exp, folding in sequence order; the empty list yields 1.
// A (-1, 1) leading pseudo-factor restores the sign. Exponents must be
// non-negative; a negative exponent fails with core.ErrBadExponent.
func IntFromPrimeDivision(fs []core.Factor) (*big.Int, error) {
	out := big.NewInt(1)
	pow := new(big.Int)
	for _, f := range fs {
		if f.Exp < 0 {
			return nil, core.ErrBadExponent
		}
		pow.Exp(f.Prime, big.NewInt(int64(f.Exp)), nil)
		out.Mul(out, pow)
	}

	return out, nil
}
