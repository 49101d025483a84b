package function

import (
	"fmt"
	"math"
)

// EvenPowerPolynomial is p(x) = Σ c_n·x^{2n}, n = 0..len(c)-1.
type EvenPowerPolynomial struct {
	coefficients []float64
}

// NewEvenPowerPolynomial copies coefficients c_0..c_{d-1}.
func NewEvenPowerPolynomial(coefficients []float64) *EvenPowerPolynomial {
	c := make([]float64, len(coefficients))
	copy(c, coefficients)

	return &EvenPowerPolynomial{coefficients: c}
}

// Eval evaluates the polynomial with Horner's scheme in x².
// Complexity: O(d).
func (p *EvenPowerPolynomial) Eval(x float64) float64 {
	x2 := x * x
	sum := 0.0
	for n := len(p.coefficients) - 1; n >= 0; n-- {
		sum = sum*x2 + p.coefficients[n]
	}

	return sum
}

// Coefficients returns a copy of c_0..c_{d-1}.
func (p *EvenPowerPolynomial) Coefficients() []float64 {
	out := make([]float64, len(p.coefficients))
	copy(out, p.coefficients)

	return out
}

// CosineSeries is s(x) = Σ c_n·cos(n·π·x/width).
type CosineSeries struct {
	coefficients []float64
	width        float64
}

// NewCosineSeries copies the coefficients; width is the half-period of the
// fundamental harmonic and must be finite and positive.
func NewCosineSeries(coefficients []float64, width float64) (*CosineSeries, error) {
	if !(width > 0) || math.IsInf(width, 1) {
		return nil, fmt.Errorf("NewCosineSeries(width=%g): %w", width, ErrInvalidWidth)
	}
	c := make([]float64, len(coefficients))
	copy(c, coefficients)

	return &CosineSeries{coefficients: c, width: width}, nil
}

// Eval sums the series term by term.
// Complexity: O(d) cosine evaluations.
func (s *CosineSeries) Eval(x float64) float64 {
	sum := 0.0
	for n, c := range s.coefficients {
		sum += c * math.Cos(x*float64(n)*math.Pi/s.width)
	}

	return sum
}

// Coefficients returns a copy of c_0..c_{d-1}.
func (s *CosineSeries) Coefficients() []float64 {
	out := make([]float64, len(s.coefficients))
	copy(out, s.coefficients)

	return out
}

// Width returns the half-period used by the series.
func (s *CosineSeries) Width() float64 { return s.width }
