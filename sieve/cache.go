// Package sieve implements the segmented-sieve prime cache.
// This file declares the Cache type, its options, and the shared
// Default instance.
package sieve

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// DefaultSegmentSpan is the width (in integers) of one sieving segment.
// One extension step examines at most this many consecutive values.
const DefaultSegmentSpan = 1_000_000

// minSegmentSpan is the smallest accepted segment width; narrower
// requests are raised to it so an extension always makes progress.
const minSegmentSpan = 16

// Option configures a Cache at construction time.
type Option func(*Cache)

// WithSegmentSpan sets the segment width for extension steps.
// Values below the internal minimum are raised to it.
func WithSegmentSpan(span uint64) Option {
	return func(c *Cache) {
		if span < minSegmentSpan {
			span = minSegmentSpan
		}
		c.span = span
	}
}

// Cache is an append-only, monotonically growing ordered list of
// confirmed primes, extended on demand by sieving one segment at a time.
//
// Invariants: the list is strictly increasing, every element is prime,
// and no prime ≤ maxChecked is missing. The Cache never shrinks.
//
// A Cache is safe for concurrent use: lookups of already-materialized
// entries proceed under a read lock, extensions are serialized under the
// write lock.
type Cache struct {
	mu         sync.RWMutex
	primes     []uint64
	maxChecked uint64 // every value ≤ maxChecked has been classified
	span       uint64
}

// New returns a Cache pre-seeded with the primes below ten.
func New(opts ...Option) *Cache {
	c := &Cache{
		primes:     []uint64{2, 3, 5, 7},
		maxChecked: 7,
		span:       DefaultSegmentSpan,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

var (
	defaultOnce  sync.Once
	defaultCache *Cache
)

// Default returns the process-wide shared Cache, created lazily on
// first use. It lives for the process lifetime and only ever grows.
func Default() *Cache {
	defaultOnce.Do(func() { defaultCache = New() })

	return defaultCache
}

// Len reports how many primes are currently materialized.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.primes)
}

// NthPrime returns the n-th prime, 0-indexed (NthPrime(0) == 2),
// extending the cache segment by segment until it is materialized.
// n must be non-negative.
func (c *Cache) NthPrime(n int) uint64 {
	c.mu.RLock()
	if n < len(c.primes) {
		p := c.primes[n]
		c.mu.RUnlock()

		return p
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	// Re-check under the write lock: another goroutine may have
	// extended past n while we waited.
	for len(c.primes) <= n {
		c.extend()
	}

	return c.primes[n]
}

// extend sieves one more segment and appends its primes.
// Caller must hold the write lock.
//
// The segment spans (maxChecked, min(maxChecked+span, 2·last)] restricted
// to odd values, where last is the largest cached prime. The 2·last clamp
// keeps the segment inside the range the cache can sieve on its own:
// every composite in the segment has a prime factor ≤ √segmentMax ≤ last,
// and that factor is already cached.
func (c *Cache) extend() {
	last := c.primes[len(c.primes)-1]
	hi := c.maxChecked + c.span
	if clamp := last * 2; hi > clamp {
		hi = clamp
	}
	lo := c.maxChecked + 1
	if lo%2 == 0 {
		lo++
	}
	// Bertrand's postulate puts a prime in (maxChecked/2, maxChecked],
	// so 2·last > maxChecked and the segment is never empty.
	odds := uint((hi-lo)/2) + 1

	marks := bitset.New(odds)
	for i := 1; i < len(c.primes); i++ { // start at 3; the segment holds no even values
		p := c.primes[i]
		if p > hi/p { // p² > segmentMax: larger primes mark nothing here
			break
		}
		start := p * p
		if start < lo {
			start = lo + (p-lo%p)%p // smallest multiple of p ≥ lo
			if start%2 == 0 {
				start += p
			}
		}
		for m := start; m <= hi; m += 2 * p {
			marks.Set(uint((m - lo) / 2))
		}
	}

	for i := uint(0); i < odds; i++ {
		if !marks.Test(i) {
			c.primes = append(c.primes, lo+2*uint64(i))
		}
	}
	c.maxChecked = hi
}
