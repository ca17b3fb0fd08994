// Package trialdiv provides the second, independent process-wide prime
// cache: confirmed primes obtained by direct trial division of
// wheel-filtered candidates against the primes already cached, plus a
// core.Generator cursor over it.
//
// What
//
//   - Cache: strictly increasing, append-only prime list. Nth(i) extends
//     it candidate by candidate until the i-th prime (0-indexed) exists.
//   - Generator: an index cursor over a Cache satisfying core.Generator.
//   - Default(): the lazily-initialized shared instance.
//
// Algorithm Outline (one extension step):
//
//  1. Candidates run ≡ 1 (mod 6) then ≡ 5 (mod 6): nextToCheck, then
//     nextToCheck+4, advancing by 6. All other residues are divisible by
//     2 or 3, so those two primes never need testing.
//  2. A candidate is divided by each cached prime from 5 up to the
//     current sqrt threshold; no divisor means the candidate is prime
//     and is appended.
//  3. The threshold is held as an index into the cache plus the square
//     of the following prime, and advanced by one step whenever the next
//     candidate pair would cross that square — the square root is never
//     recomputed from scratch.
//
// Why a second cache
//
//	The sieve cache and this cache extend by unrelated methods, which
//	makes them mutual correctness checks: their sequences must agree
//	element for element. Trial division also grows in O(1) memory steps,
//	with no segment buffer.
//
// Complexity
//
//   - One extension step: O(π(√c)) divisions for candidate c.
//   - Memory: the prime list only.
//
// Concurrency mirrors sieve.Cache: read lock for materialized entries,
// write lock with re-check for extension. Generators are single-owner.
package trialdiv
