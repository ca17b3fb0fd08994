// Package factor decomposes integers into ordered (prime, exponent)
// pairs by generator-fed trial division, and recomposes such pair lists
// back into integers.
//
// What
//
//   - PrimeDivision(v, g): the factorization of v as []core.Factor,
//     primes strictly increasing, exponents ≥ 1, with a leading (-1, 1)
//     pseudo-factor when v < 0. Any core.Generator works; nil selects
//     the default mod-2/3 wheel.
//   - IntFromPrimeDivision(fs): the product of prime^exp over fs —
//     the left inverse of PrimeDivision.
//
// Algorithm Outline (PrimeDivision):
//
//  1. v == 0 is refused with core.ErrZeroDivision; v < 0 contributes
//     (-1, 1) and continues on |v|.
//  2. Candidates are pulled from the generator in ascending order; each
//     is divided out of the running value while it divides evenly,
//     counting the exponent.
//  3. Once the failing quotient drops to the candidate or below, the
//     remaining value is 1 or itself prime — the generator is abandoned
//     and a trailing (value, 1) pair is emitted when value > 1.
//
// Correctness with pseudo-prime sources
//
//	A candidate stream only needs to be a superset of the primes. When a
//	composite candidate like 25 arrives, its prime factors (5) were
//	already divided out at an earlier candidate, so the composite cannot
//	divide the remaining value and simply passes through with exponent
//	zero. This is what lets the cheap wheel serve as the default source.
//
// Complexity
//
//	O(√v) candidate divisions in the worst case (v prime or a product
//	of two near-equal primes), O(polylog v) work per division.
package factor
