// Package sieve provides a process-wide, append-only cache of confirmed
// primes extended on demand by a segmented Sieve of Eratosthenes, plus a
// core.Generator cursor over it.
//
// What
//
//   - Cache: an ordered, strictly increasing, monotonically growing list
//     of primes, complete up to its high-water mark. NthPrime(n) extends
//     the cache one segment at a time until the n-th prime (0-indexed)
//     is materialized, then serves it.
//   - Generator: an index cursor over a Cache satisfying core.Generator.
//   - Default(): the lazily-initialized shared Cache used by fresh
//     generators; private Cache instances can be built with New for
//     isolated tests.
//
// Algorithm Outline (one extension step):
//
//  1. Let last = largest cached prime, next = high-water mark + 1.
//  2. The segment spans [next, min(next+span-1, 2·last)], odd values only.
//     The 2·last clamp guarantees the cache already holds every prime
//     ≤ √segmentMax needed to sieve the segment (Bertrand's postulate
//     is not even required; √(2·last) ≤ last for last ≥ 2).
//  3. For each cached odd prime p with p² ≤ segmentMax, mark the odd
//     multiples of p inside the segment in a bit array.
//  4. Append the unmarked values to the cache in increasing order and
//     advance the high-water mark to the segment's end.
//
// Complexity
//
//   - One extension: O(span · log log segmentMax) marking work.
//   - NthPrime(n) amortized: the classic segmented-sieve bound,
//     O(N log log N) to materialize all primes below N.
//   - Memory: one bit per odd value in the current segment
//     (bits-and-blooms/bitset), plus the prime list itself.
//
// Concurrency
//
//	A Cache may be shared: reads of already-materialized entries take a
//	read lock; extension is serialized under the write lock with a
//	re-check, so concurrent NthPrime calls never sieve the same segment
//	twice. Generator cursors are NOT shareable — one per enumeration.
package sieve
