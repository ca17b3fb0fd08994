// Package primality decides whether an arbitrary-precision integer is
// prime, preferring a deterministic Miller-Rabin witness set and falling
// back to exhaustive mod-30 wheel trial division outside the witness
// table's domain.
//
// What
//
//   - IsPrime(n): true iff n is prime, for any *big.Int.
//   - NextPrime(n): the smallest prime strictly greater than n.
//
// Algorithm Outline (IsPrime):
//
//  1. n ≤ 3: prime iff n ≥ 2. Even n > 3: composite.
//  2. Pick the witness basis set from a fixed threshold table: the
//     smallest tabulated threshold exceeding n selects bases proven to
//     deterministically classify every integer below that threshold.
//     The table tops out near 3.3·10²⁴.
//  3. With a basis set in hand, run Miller-Rabin: write n-1 = d·2^r
//     with d odd; for each basis a compute x = a^d mod n, accept the
//     basis when x ∈ {1, n-1} (or a == n), otherwise square x up to r-1
//     times looking for n-1; a basis that never reaches n-1 proves n
//     composite.
//  4. Below the smallest threshold, or at and above the largest, no
//     tabulated set applies: fall back to trial division over the mod-30
//     wheel — quick-reject via gcd(30, n) ≠ 1 (5 special-cased), then
//     divide by p+{0,4,6,10,12,16,22,24} for p = 7, 37, 67, ... up to
//     √n. Always correct, merely slow for very large n.
//
// Determinism
//
//	Both branches are deterministic. The Miller-Rabin branch is exact
//	for every n below the largest tabulated threshold because the basis
//	sets are the published minimal witness sets for those ranges; the
//	wheel branch is exhaustive trial division up to the square root.
//
// Complexity
//
//   - Miller-Rabin branch: O(k · log³ n) for k tabulated bases.
//   - Wheel branch: O(√n / 3.75) divisions (8 of every 30 residues).
package primality
