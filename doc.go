// Package primal is a self-contained toolkit for primality testing,
// prime enumeration, and integer factorization over arbitrary-precision
// integers.
//
// 🚀 What is primal?
//
//	A pure-algorithm library that brings together:
//		• Primality: deterministic Miller-Rabin under a published witness
//		  table, exhaustive mod-30 wheel trial division beyond it
//		• Enumeration: two independent, self-extending prime caches —
//		  a segmented Sieve of Eratosthenes and incremental trial division
//		• Candidate streams: a pluggable Generator capability with three
//		  concrete sources, including a zero-memory mod-2/3 wheel
//		• Factorization: generator-fed prime division and its inverse
//
// ✨ Why choose primal?
//
//   - Exact answers — every branch is deterministic, nothing probabilistic
//   - Self-extending — caches grow on demand, never shrink, never reset
//   - Pluggable — factor against a true-prime cache or a cheap
//     pseudo-prime wheel, same result
//   - Concurrent-friendly — shared caches behind RWMutexes, private
//     cursors per enumeration
//
// Everything is organized under small, flat subpackages:
//
//	core/      — Generator interface, Factor type, bounded iteration
//	wheel/     — mod-2/3 candidate wheel (default factorization source)
//	sieve/     — segmented-sieve prime cache + generator
//	trialdiv/  — trial-division prime cache + generator
//	primality/ — IsPrime, NextPrime
//	factor/    — PrimeDivision, IntFromPrimeDivision
//
// The root package is a thin facade forwarding to those engines with
// sensible defaults:
//
//	primal.IsPrime(big.NewInt(97))            // true
//	primal.PrimeDivision(big.NewInt(45))      // [(3,2) (5,1)]
//	primal.PrimesUpTo(big.NewInt(100))        // the 25 primes ≤ 100
//	primal.EachPrime(nil, func(p *big.Int) error { ... })
//
// Dive into each subpackage's doc.go for algorithm outlines, complexity
// and concurrency notes, and into examples/ for runnable scenarios.
package primal
