package factor_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/primal/core"
	"github.com/katalvlaran/primal/factor"
	"github.com/katalvlaran/primal/sieve"
)

// benchmarkPrimeDivision factors v with a fresh generator per iteration.
func benchmarkPrimeDivision(b *testing.B, v int64, gen func() core.Generator) {
	n := big.NewInt(v)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var g core.Generator
		if gen != nil {
			g = gen()
		}
		if _, err := factor.PrimeDivision(n, g); err != nil {
			b.Fatalf("PrimeDivision failed: %v", err)
		}
	}
}

// BenchmarkPrimeDivision_SmoothWheel factors a highly composite value
// through the default wheel (many tiny factors, early termination).
func BenchmarkPrimeDivision_SmoothWheel(b *testing.B) {
	benchmarkPrimeDivision(b, 720_720, nil) // 2^4·3^2·5·7·11·13
}

// BenchmarkPrimeDivision_PrimeWheel factors a prime near 10^9 — the
// worst case, walking candidates all the way to the square root.
func BenchmarkPrimeDivision_PrimeWheel(b *testing.B) {
	benchmarkPrimeDivision(b, 999_999_937, nil)
}

// BenchmarkPrimeDivision_PrimeSieve is the same worst case fed from the
// warm shared sieve cache: fewer candidates, cache-lookup cost each.
func BenchmarkPrimeDivision_PrimeSieve(b *testing.B) {
	sieve.Default().NthPrime(3_500) // warm past √(10^9)
	benchmarkPrimeDivision(b, 999_999_937, func() core.Generator { return sieve.NewGenerator() })
}

// BenchmarkIntFromPrimeDivision measures the recomposition fold.
func BenchmarkIntFromPrimeDivision(b *testing.B) {
	fs, err := factor.PrimeDivision(big.NewInt(720_720), nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := factor.IntFromPrimeDivision(fs); err != nil {
			b.Fatal(err)
		}
	}
}
