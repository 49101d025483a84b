package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/fredholm/parallel"
	"github.com/stretchr/testify/assert"
)

// TestFor_VisitsEveryIndexOnce writes to disjoint slots and checks coverage.
func TestFor_VisitsEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 64} {
		out := make([]int, 1000)
		parallel.For(len(out), workers, func(i int) { out[i]++ })
		for i, v := range out {
			assert.Equal(t, 1, v, "workers=%d index=%d", workers, i)
		}
	}
}

func TestFor_Empty(t *testing.T) {
	var calls atomic.Int64
	parallel.For(0, 4, func(int) { calls.Add(1) })
	parallel.For(-3, 4, func(int) { calls.Add(1) })
	assert.Zero(t, calls.Load())
}

// TestChunks_PartitionIsContiguous verifies the ranges tile [0,n) exactly.
func TestChunks_PartitionIsContiguous(t *testing.T) {
	cases := []struct{ n, workers int }{{10, 3}, {7, 7}, {5, 16}, {1, 4}, {1000, 8}}
	for _, tc := range cases {
		count := parallel.Count(tc.n, tc.workers)
		bounds := make([][2]int, count)
		parallel.Chunks(tc.n, tc.workers, func(c, lo, hi int) { bounds[c] = [2]int{lo, hi} })

		next := 0
		for c, b := range bounds {
			assert.Equal(t, next, b[0], "n=%d chunk %d start", tc.n, c)
			assert.Greater(t, b[1], b[0], "chunk %d not empty", c)
			next = b[1]
		}
		assert.Equal(t, tc.n, next, "n=%d fully covered", tc.n)
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, parallel.Count(0, 4))
	assert.Equal(t, 3, parallel.Count(3, 8))
	assert.Equal(t, 2, parallel.Count(10, 2))
	assert.GreaterOrEqual(t, parallel.Workers(0), 1)
	assert.Equal(t, 5, parallel.Workers(5))
}
