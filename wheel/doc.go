// Package wheel provides the cheapest candidate source in primal: a
// zero-state mod-2/3 wheel that emits 2, 3, and then every integer
// coprime to 6, plus a core.Generator wrapper over it.
//
// What
//
//   - Filter: produces 2, 3, 5, 7, 11, 13, ... by alternating steps of
//     +2 and +4 after the special-cased start. Every value after 3 is
//     greater than 2 and divisible by neither 2 nor 3.
//   - Generator: a thin core.Generator over Filter, adding the shared
//     Limit bound.
//
// Why
//
//   - The stream is a strict superset of the primes (it includes 25, 35,
//     49, ...), which is exactly enough for trial-division factorization:
//     by the time a composite candidate like 25 is offered, its prime
//     factors have already been divided out, so it can never divide the
//     remaining value. This makes Filter the default factorization
//     source — no cache, no memory, no sieving.
//
// Complexity
//
//   - Succ: O(1) time, one big.Int allocation.
//   - Memory: O(1) — two words of cursor state.
package wheel
