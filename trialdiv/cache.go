package trialdiv

import "sync"

// Cache is an append-only prime list extended by trial division of
// mod-6 wheel candidates against the primes already cached.
//
// Invariants match sieve.Cache: strictly increasing, every element
// prime, complete below the last element, never shrinks.
type Cache struct {
	mu     sync.RWMutex
	primes []uint64

	// nextToCheck is the next unexamined candidate, always ≡ 1 (mod 6);
	// one extension step examines it and its +4 companion (≡ 5 mod 6).
	nextToCheck uint64

	// sqrtIdx and nextSquared carry the trial-division ceiling:
	// candidates below nextSquared need divisors only from
	// primes[2..sqrtIdx]. Advanced one prime at a time, never derived
	// from an actual square root.
	sqrtIdx     int
	nextSquared uint64
}

// New returns a Cache seeded with 2, 3, 5, positioned at candidate 7.
func New() *Cache {
	return &Cache{
		primes:      []uint64{2, 3, 5},
		nextToCheck: 7,
		sqrtIdx:     1,  // primes[1] == 3
		nextSquared: 25, // primes[2]²
	}
}

var (
	defaultOnce  sync.Once
	defaultCache *Cache
)

// Default returns the process-wide shared Cache, created lazily on
// first use.
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

// Nth returns the i-th prime, 0-indexed (Nth(0) == 2), extending the
// cache until it is materialized. i must be non-negative.
func (c *Cache) Nth(i int) uint64 {
	c.mu.RLock()
	if i < len(c.primes) {
		p := c.primes[i]
		c.mu.RUnlock()

		return p
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	for len(c.primes) <= i {
		c.extend()
	}

	return c.primes[i]
}

// extend examines the next candidate pair and appends any primes found.
// Caller must hold the write lock.
func (c *Cache) extend() {
	// The larger of the pair is nextToCheck+4; once it would reach the
	// square of the prime after sqrtIdx, that prime joins the divisor
	// range and the threshold square moves to the prime after it.
	if c.nextToCheck+4 > c.nextSquared {
		c.sqrtIdx++
		next := c.primes[c.sqrtIdx+1]
		c.nextSquared = next * next
	}

	if !c.divisible(c.nextToCheck) {
		c.primes = append(c.primes, c.nextToCheck)
	}
	c.nextToCheck += 4 // 1 (mod 6) → 5 (mod 6)
	if !c.divisible(c.nextToCheck) {
		c.primes = append(c.primes, c.nextToCheck)
	}
	c.nextToCheck += 2 // 5 (mod 6) → 1 (mod 6)
}

// divisible reports whether v has a divisor among primes[2..sqrtIdx].
// Candidates are coprime to 6 by construction, so 2 and 3 are skipped.
func (c *Cache) divisible(v uint64) bool {
	for _, p := range c.primes[2 : c.sqrtIdx+1] {
		if v%p == 0 {
			return true
		}
	}

	return false
}
