package function

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSampling indicates a sampling request with fewer than two points,
	// or a tabulated function built from fewer than two samples.
	ErrInvalidSampling = errors.New("function: at least two sample points required")

	// ErrInvalidWidth indicates a non-positive or non-finite interval width.
	ErrInvalidWidth = errors.New("function: width must be finite and > 0")
)

// Function is a real-valued function of one real variable.
// Implementations must be pure and safe for concurrent use.
type Function interface {
	// Eval returns f(x).
	Eval(x float64) float64
}

// Func adapts an ordinary closure to the Function interface.
// The closure must not mutate shared state: solvers call it from many goroutines.
type Func func(x float64) float64

// Eval calls f(x).
func (f Func) Eval(x float64) float64 { return f(x) }

// Point is one (x, f(x)) sample.
type Point struct {
	X, Y float64
}

// Sample evaluates f at n evenly spaced points covering [left, right],
// both ends included: x_i = left + i·(right-left)/(n-1).
//
// Errors:
//   - ErrInvalidSampling if n < 2.
//
// Complexity: O(n) evaluations of f.
func Sample(f Function, left, right float64, n int) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("Sample(n=%d): %w", n, ErrInvalidSampling)
	}

	step := (right - left) / float64(n-1)
	out := make([]Point, n)
	for i := range out {
		x := float64(i)*step + left
		out[i] = Point{X: x, Y: f.Eval(x)}
	}

	return out, nil
}

// Values returns the Y components of pts in order.
func Values(pts []Point) []float64 {
	ys := make([]float64, len(pts))
	for i, p := range pts {
		ys[i] = p.Y
	}

	return ys
}
