// Package quadrature provides definite integration of function.Function
// values over a closed interval with a fixed node count.
package quadrature

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/fredholm/function"
	"github.com/katalvlaran/fredholm/parallel"
)

// ErrInvalidNodeCount indicates a rule configured with fewer than two nodes.
var ErrInvalidNodeCount = errors.New("quadrature: node count must be >= 2")

// Integrator computes ∫_left^right f(x) dx.
// Implementations must be safe for concurrent use; solvers nest calls.
type Integrator interface {
	Integrate(f function.Function, left, right float64) float64
}

// Option configures a Trapezoid.
type Option func(*Options)

// Options holds Trapezoid settings.
type Options struct {
	// Workers bounds the goroutines per Integrate call; < 1 means GOMAXPROCS.
	Workers int
}

// DefaultOptions returns zero Workers (GOMAXPROCS).
func DefaultOptions() Options { return Options{} }

// WithWorkers limits the number of concurrently evaluated chunks.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// Trapezoid is the composite trapezoid rule on NodeCount equally spaced
// nodes, i.e. NodeCount-1 subintervals. It is exact for constant and linear
// integrands.
type Trapezoid struct {
	nodeCount int
	workers   int
}

// NewTrapezoid returns a rule with nodeCount nodes.
//
// Errors:
//   - ErrInvalidNodeCount if nodeCount < 2.
func NewTrapezoid(nodeCount int, opts ...Option) (*Trapezoid, error) {
	if nodeCount < 2 {
		return nil, fmt.Errorf("NewTrapezoid(%d): %w", nodeCount, ErrInvalidNodeCount)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Trapezoid{nodeCount: nodeCount, workers: o.Workers}, nil
}

// NodeCount returns the configured number of nodes.
func (t *Trapezoid) NodeCount() int { return t.nodeCount }

// Integrate applies the rule over [left, right]. Reversed bounds give the
// negated integral and equal bounds give 0.
//
// The subintervals are split into contiguous chunks, one per worker. Each
// chunk samples its own nodes and reduces them with integrate.Trapezoidal;
// the chunk partials are summed after every chunk has finished. Summation
// order therefore depends on the worker count, so only the last bits of the
// result may differ between configurations.
//
// Complexity: O(NodeCount) evaluations of f (shared chunk edges are
// evaluated twice).
func (t *Trapezoid) Integrate(f function.Function, left, right float64) float64 {
	if left == right {
		return 0
	}
	if right < left {
		return -t.Integrate(f, right, left)
	}

	intervals := t.nodeCount - 1
	step := (right - left) / float64(intervals)
	partial := make([]float64, parallel.Count(intervals, t.workers))

	parallel.Chunks(intervals, t.workers, func(c, lo, hi int) {
		xs := make([]float64, hi-lo+1)
		fs := make([]float64, hi-lo+1)
		for k := range xs {
			x := float64(lo+k)*step + left
			xs[k] = x
			fs[k] = f.Eval(x)
		}
		partial[c] = integrate.Trapezoidal(xs, fs)
	})

	return floats.Sum(partial)
}
