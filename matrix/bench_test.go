package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fredholm/matrix"
)

// benchmarkFactorize runs Factorize on an n×n diagonally dominant matrix.
func benchmarkFactorize(b *testing.B, n, workers int) {
	rng := rand.New(rand.NewSource(1))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.Float64()
	}
	for i := 0; i < n; i++ {
		data[i*n+i] += float64(n)
	}
	a, err := matrix.NewDenseFrom(n, n, data)
	if err != nil {
		b.Fatalf("NewDenseFrom: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Factorize(a, workers); err != nil {
			b.Fatalf("Factorize failed: %v", err)
		}
	}
}

// BenchmarkFactorize_Serial300 benchmarks a 300×300 factorization on one goroutine.
func BenchmarkFactorize_Serial300(b *testing.B) { benchmarkFactorize(b, 300, 1) }

// BenchmarkFactorize_Parallel300 benchmarks the same system with GOMAXPROCS workers.
func BenchmarkFactorize_Parallel300(b *testing.B) { benchmarkFactorize(b, 300, 0) }
