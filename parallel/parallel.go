// Package parallel provides the fork-join primitive used by the numeric
// kernels: run independent units of work over an index range, then wait for
// all of them before the caller reduces the results.
//
// Units must only read shared state and write to disjoint output slots;
// the package adds no locking of its own.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers normalises a requested worker count: values < 1 mean
// runtime.GOMAXPROCS(0).
func Workers(n int) int {
	if n < 1 {
		return runtime.GOMAXPROCS(0)
	}

	return n
}

// For calls fn(i) for every i in [0, n) using at most workers goroutines
// and returns once all calls have finished.
// n <= 0 is a no-op; workers < 1 selects GOMAXPROCS.
func For(n, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers = Workers(workers)
	if workers == 1 || n == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait() // units never fail
}

// Chunks splits [0, n) into at most workers contiguous half-open ranges
// [lo, hi) of near-equal length and calls fn(chunk, lo, hi) for each one
// concurrently. chunk numbers run 0..Count(n, workers)-1 so callers can
// write per-chunk partial results into a pre-sized slice.
func Chunks(n, workers int, fn func(chunk, lo, hi int)) {
	count := Count(n, workers)
	if count == 0 {
		return
	}
	if count == 1 {
		fn(0, 0, n)
		return
	}

	size, rem := n/count, n%count
	var g errgroup.Group
	lo := 0
	for c := 0; c < count; c++ {
		start, hi := lo, lo+size
		if c < rem {
			hi++
		}
		c := c
		g.Go(func() error {
			fn(c, start, hi)
			return nil
		})
		lo = hi
	}
	_ = g.Wait()
}

// Count reports how many chunks Chunks will use for n units.
func Count(n, workers int) int {
	if n <= 0 {
		return 0
	}

	return min(Workers(workers), n)
}
