package wheel_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/primal/core"
	"github.com/katalvlaran/primal/wheel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFilter_Head verifies the special-cased start and the engaged
// +2/+4 alternation: 2, 3, 5, 7, 11, 13, ... including the first
// composites 25 and 35.
func TestFilter_Head(t *testing.T) {
	f := wheel.NewFilter()

	want := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 25, 29, 31, 35, 37}
	for i, w := range want {
		assert.Equal(t, w, f.Succ(), "position %d", i)
	}
}

// TestFilter_ZeroValueUsable checks that the zero value starts the same
// sequence as NewFilter.
func TestFilter_ZeroValueUsable(t *testing.T) {
	var f wheel.Filter
	assert.Equal(t, uint64(2), f.Succ())
	assert.Equal(t, uint64(3), f.Succ())
	assert.Equal(t, uint64(5), f.Succ())
}

// TestFilter_CoprimeToSix checks the wheel guarantee: after 2 and 3,
// no emitted value is divisible by 2 or 3, and the stream is strictly
// increasing.
func TestFilter_CoprimeToSix(t *testing.T) {
	f := wheel.NewFilter()
	f.Succ() // 2
	f.Succ() // 3

	prev := uint64(3)
	for i := 0; i < 10_000; i++ {
		v := f.Succ()
		require.Greater(t, v, prev, "sequence must be strictly increasing")
		require.NotZero(t, v%2, "value %d divisible by 2", v)
		require.NotZero(t, v%3, "value %d divisible by 3", v)
		prev = v
	}
}

// TestFilter_Rewind verifies that Rewind restarts the exact sequence.
func TestFilter_Rewind(t *testing.T) {
	f := wheel.NewFilter()

	var first []uint64
	for i := 0; i < 50; i++ {
		first = append(first, f.Succ())
	}

	f.Rewind()
	for i, w := range first {
		assert.Equal(t, w, f.Succ(), "replay position %d", i)
	}
}

// TestGenerator_SatisfiesCore verifies the core.Generator adaptation:
// big.Int values, bound honored by core.Each, Rewind restart.
func TestGenerator_SatisfiesCore(t *testing.T) {
	var g core.Generator = wheel.New()
	g.SetBound(big.NewInt(25))

	var got []int64
	require.NoError(t, core.Each(g, func(p *big.Int) error {
		got = append(got, p.Int64())

		return nil
	}))
	assert.Equal(t, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 25}, got)

	g.Rewind()
	assert.Equal(t, int64(2), g.Succ().Int64())
}

// TestGenerator_FreshValues checks that successive Succ results are
// independent allocations, safe for the caller to keep or mutate.
func TestGenerator_FreshValues(t *testing.T) {
	g := wheel.New()
	a := g.Succ()
	b := g.Succ()
	a.SetInt64(1000)

	assert.Equal(t, int64(3), b.Int64())
	assert.Equal(t, int64(5), g.Succ().Int64())
}
