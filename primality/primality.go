package primality

import "math/big"

// Shared small constants; read-only after init.
var (
	bigOne    = big.NewInt(1)
	bigTwo    = big.NewInt(2)
	bigThree  = big.NewInt(3)
	bigFive   = big.NewInt(5)
	bigThirty = big.NewInt(30)
)

// wheelOffsets are the residues coprime to 30 relative to each wheel
// position 7+30k: 7, 11, 13, 17, 19, 23, 29, 31, then the next turn.
var wheelOffsets = [8]int64{0, 4, 6, 10, 12, 16, 22, 24}

// IsPrime reports whether n is prime.
//
// Integers covered by the deterministic Miller-Rabin witness table
// (2047 ≤ n < ~3.3·10²⁴) are classified by Miller-Rabin; everything
// else takes exhaustive mod-30 wheel trial division up to √n. Both
// branches are exact — there is no probabilistic answer — but the wheel
// branch grows slow for n far beyond the table.
func IsPrime(n *big.Int) bool {
	if n.Cmp(bigThree) <= 0 {
		return n.Cmp(bigTwo) >= 0
	}
	if n.Bit(0) == 0 {
		return false
	}

	bases := basesFor(n)
	if bases == nil {
		return wheelDivision(n)
	}

	return millerRabin(n, bases)
}

// NextPrime returns the smallest prime strictly greater than n.
// The result is freshly allocated; n is not modified.
func NextPrime(n *big.Int) *big.Int {
	if n.Cmp(bigTwo) < 0 {
		return big.NewInt(2)
	}
	p := new(big.Int).Add(n, bigOne)
	if p.Bit(0) == 0 { // n ≥ 2, so p ≥ 3 here and may skip to odd
		p.Add(p, bigOne)
	}
	for !IsPrime(p) {
		p.Add(p, bigTwo)
	}

	return p
}

// wheelDivision decides primality of odd n ≥ 5 by trial division over
// the mod-30 wheel. Exhaustive up to √n, therefore always correct.
func wheelDivision(n *big.Int) bool {
	if n.Cmp(bigFive) == 0 {
		return true
	}
	// Any n > 5 sharing a factor with 30 is divisible by 2, 3 or 5.
	if new(big.Int).GCD(nil, nil, bigThirty, n).Cmp(bigOne) != 0 {
		return false
	}

	root := new(big.Int).Sqrt(n)
	p := big.NewInt(7)
	cand := new(big.Int)
	rem := new(big.Int)
	off := new(big.Int)
	for p.Cmp(root) <= 0 {
		for _, o := range wheelOffsets {
			cand.Add(p, off.SetInt64(o))
			if cand.Cmp(root) > 0 {
				break
			}
			if rem.Mod(n, cand).Sign() == 0 {
				return false
			}
		}
		p.Add(p, bigThirty)
	}

	return true
}
