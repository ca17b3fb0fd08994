package primality

import "math/big"

// witnessSet maps a magnitude threshold to the minimal Miller-Rabin
// basis set proven deterministic for every integer below that threshold.
type witnessSet struct {
	below *big.Int
	bases []uint64
}

// witnessTable, ordered by threshold. An integer n selects the first
// entry with n < below; integers under the first threshold or at and
// above the last have no tabulated set and take the wheel fallback.
//
// Thresholds and bases are the published minimal deterministic sets
// (Pomerance–Selfridge–Wagstaff, Jaeschke, Sorenson–Webster).
var witnessTable = []witnessSet{
	{big.NewInt(2047), []uint64{2}},
	{big.NewInt(1373653), []uint64{2, 3}},
	{big.NewInt(9080191), []uint64{31, 73}},
	{big.NewInt(25326001), []uint64{2, 3, 5}},
	{big.NewInt(3215031751), []uint64{2, 3, 5, 7}},
	{big.NewInt(4759123141), []uint64{2, 7, 61}},
	{big.NewInt(1122004669633), []uint64{2, 13, 23, 1662803}},
	{big.NewInt(2152302898747), []uint64{2, 3, 5, 7, 11}},
	{big.NewInt(3474749660383), []uint64{2, 3, 5, 7, 11, 13}},
	{big.NewInt(341550071728321), []uint64{2, 3, 5, 7, 11, 13, 17}},
	{big.NewInt(3825123056546413051), []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23}},
	{bigFromDecimal("318665857834031151167461"), []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}},
	{bigFromDecimal("3317044064679887385961981"), []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}},
}

// bigFromDecimal parses a decimal literal too wide for an int64.
// Only used on table constants, so a malformed literal is a panic.
func bigFromDecimal(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("primality: bad table constant " + s)
	}

	return v
}

// basesFor selects the tabulated basis set for n, or nil when n lies
// outside the table's domain (below the first or at/above the last
// threshold).
func basesFor(n *big.Int) []uint64 {
	if n.Cmp(witnessTable[0].below) < 0 {
		return nil
	}
	for _, ws := range witnessTable {
		if n.Cmp(ws.below) < 0 {
			return ws.bases
		}
	}

	return nil
}

// millerRabin runs the deterministic Miller-Rabin test on odd n > 3
// with the given witness bases. It returns false as soon as one basis
// proves n composite, true when every basis passes.
func millerRabin(n *big.Int, bases []uint64) bool {
	nm1 := new(big.Int).Sub(n, bigOne)
	r := nm1.TrailingZeroBits()
	d := new(big.Int).Rsh(nm1, r) // n-1 = d·2^r, d odd

	a := new(big.Int)
	x := new(big.Int)
	for _, base := range bases {
		a.SetUint64(base)
		if a.Cmp(n) == 0 {
			continue
		}
		x.Exp(a, d, n)
		if x.Cmp(bigOne) == 0 || x.Cmp(nm1) == 0 {
			continue
		}
		witness := true
		for i := uint(1); i < r; i++ {
			x.Mul(x, x).Mod(x, n)
			if x.Cmp(nm1) == 0 {
				witness = false
				break
			}
		}
		if witness {
			return false
		}
	}

	return true
}
