package function

import (
	"fmt"
	"math"
)

// Blend selects how PointFunction mixes the two samples around x.
type Blend int

const (
	// BlendReference reproduces the historical solver output: with
	// t = frac((x-left)/step), it returns s[i]·t + s[i+1]·(1-t).
	// The weights are swapped relative to textbook interpolation, so a node
	// x_i evaluates to s[i+1].
	BlendReference Blend = iota

	// BlendLinear is conventional linear interpolation:
	// s[i]·(1-t) + s[i+1]·t.
	BlendLinear
)

// String implements fmt.Stringer.
func (b Blend) String() string {
	switch b {
	case BlendReference:
		return "reference"
	case BlendLinear:
		return "linear"
	default:
		return fmt.Sprintf("Blend(%d)", int(b))
	}
}

// PointFunction is a function tabulated at n evenly spaced nodes over
// [left, right]. Outside the range it is constant: the first sample below
// left and the last sample from the final node onwards.
type PointFunction struct {
	samples     []float64
	left, right float64
	step        float64
	blend       Blend
}

// NewPointFunction builds a PointFunction from samples taken at
// left + i·(right-left)/(len(samples)-1). The slice is copied.
//
// Errors:
//   - ErrInvalidSampling if len(samples) < 2.
//   - ErrInvalidWidth if right <= left or the bounds are not finite.
func NewPointFunction(samples []float64, left, right float64, blend Blend) (*PointFunction, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("NewPointFunction(len=%d): %w", len(samples), ErrInvalidSampling)
	}
	if !(right > left) || math.IsInf(left, 0) || math.IsInf(right, 0) {
		return nil, fmt.Errorf("NewPointFunction([%g,%g]): %w", left, right, ErrInvalidWidth)
	}

	s := make([]float64, len(samples))
	copy(s, samples)

	return &PointFunction{
		samples: s,
		left:    left,
		right:   right,
		step:    (right - left) / float64(len(s)-1),
		blend:   blend,
	}, nil
}

// Eval returns the interpolated value at x.
// Complexity: O(1).
func (p *PointFunction) Eval(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if x < p.left {
		return p.samples[0]
	}

	n := len(p.samples)
	u := (x - p.left) / p.step
	// floor(u)+2 > n, checked in float space so huge x never overflows int.
	if u >= float64(n-1) {
		return p.samples[n-1]
	}

	whole, t := math.Modf(u)
	i := int(whole)
	if p.blend == BlendLinear {
		return p.samples[i]*(1-t) + p.samples[i+1]*t
	}

	return p.samples[i]*t + p.samples[i+1]*(1-t)
}

// Len returns the number of samples.
func (p *PointFunction) Len() int { return len(p.samples) }

// Bounds returns the tabulated interval.
func (p *PointFunction) Bounds() (left, right float64) { return p.left, p.right }

// Samples returns a copy of the tabulated values.
func (p *PointFunction) Samples() []float64 {
	out := make([]float64, len(p.samples))
	copy(out, p.samples)

	return out
}
