package sieve_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/primal/core"
	"github.com/katalvlaran/primal/sieve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerator_AscendingPrimes verifies the generator emits the cached
// primes in order, strictly increasing, starting at 2.
func TestGenerator_AscendingPrimes(t *testing.T) {
	g := sieve.NewGeneratorOn(sieve.New())

	prev := big.NewInt(0)
	for i, want := range []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29} {
		p := g.Succ()
		require.Equal(t, want, p.Int64(), "position %d", i)
		require.Positive(t, p.Cmp(prev))
		prev = p
	}
}

// TestGenerator_BoundedEach drains a bounded cursor through core.Each
// and compares with the reference sieve.
func TestGenerator_BoundedEach(t *testing.T) {
	g := sieve.NewGeneratorOn(sieve.New())
	g.SetBound(big.NewInt(1_000))

	got, err := core.Collect(g)
	require.NoError(t, err)

	want := referenceSieve(1_000)
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w, got[i].Uint64(), "prime #%d", i)
	}
}

// TestGenerator_RewindReplays checks that Rewind followed by replaying
// Succ reproduces the original prefix exactly.
func TestGenerator_RewindReplays(t *testing.T) {
	g := sieve.NewGeneratorOn(sieve.New())

	var first []uint64
	for i := 0; i < 500; i++ {
		first = append(first, g.Succ().Uint64())
	}

	g.Rewind()
	for i, w := range first {
		require.Equal(t, w, g.Succ().Uint64(), "replay position %d", i)
	}
}

// TestGenerator_SharedCachePrivateCursors runs two cursors over one
// cache and checks they advance independently.
func TestGenerator_SharedCachePrivateCursors(t *testing.T) {
	c := sieve.New()
	a := sieve.NewGeneratorOn(c)
	b := sieve.NewGeneratorOn(c)

	assert.Equal(t, int64(2), a.Succ().Int64())
	assert.Equal(t, int64(3), a.Succ().Int64())
	assert.Equal(t, int64(2), b.Succ().Int64(), "b must not see a's position")
}
