// Package core defines the central Generator capability interface, the
// Factor pair type, sentinel errors, and the shared bounded-iteration
// helpers used by every concrete prime source in primal.
//
// What
//
//   - Generator: a stateful cursor over an ascending candidate stream
//     (Succ / Rewind / Bound / SetBound). Concrete variants live in the
//     sieve, trialdiv, and wheel packages.
//   - Factor: one (prime, exponent) pair of a factorization.
//   - Each / Collect: bounded iteration implemented once over the
//     interface, never per variant.
//   - Limit: an embeddable bound holder so every variant shares one
//     Bound/SetBound implementation.
//
// Why
//
//   - The factorization and enumeration layers must not care which
//     candidate source feeds them: a true-prime cache or a cheap
//     pseudo-prime wheel both satisfy Generator.
//   - Keeping the iteration contract (yield while value ≤ bound, forever
//     when the bound is nil) in one place makes every source bounded the
//     same way.
//
// Contract
//
//	Successive Succ calls yield a strictly increasing sequence.
//	Rewind resets the cursor to its initial state; replaying Succ
//	reproduces the original sequence exactly. A Generator is a private
//	cursor: it must not be shared across goroutines.
//
// Errors (sentinel):
//
//	– ErrNilGenerator  if a nil Generator is passed where one is required.
//	– ErrUnbounded     if Collect is asked to drain a boundless stream.
//	– ErrZeroDivision  if a factorization of zero is requested.
//	– ErrBadExponent   if a recomposition meets a negative exponent.
//	– ErrStop          returned by a visitor to end iteration early.
package core
