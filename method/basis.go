package method

import (
	"math"

	"github.com/katalvlaran/fredholm/function"
)

// Basis is a family of trial functions φ_j on [-width, width] used by
// Galerkin, together with the representation of a finite expansion.
type Basis interface {
	// Name identifies the basis in logs.
	Name() string
	// Eval returns φ_j(x).
	Eval(x float64, j int, width float64) float64
	// Expand returns Σ c_j·φ_j as a function.
	Expand(coefficients []float64, width float64) (function.Function, error)
}

// EvenPowers is φ_j(x) = x^{2j}; expansions are EvenPowerPolynomial.
type EvenPowers struct{}

func (EvenPowers) Name() string { return "even-powers" }

func (EvenPowers) Eval(x float64, j int, _ float64) float64 {
	return math.Pow(x, float64(2*j))
}

func (EvenPowers) Expand(coefficients []float64, _ float64) (function.Function, error) {
	return function.NewEvenPowerPolynomial(coefficients), nil
}

// Cosines is φ_j(x) = cos(j·π·x/width); expansions are CosineSeries.
type Cosines struct{}

func (Cosines) Name() string { return "cosines" }

func (Cosines) Eval(x float64, j int, width float64) float64 {
	return math.Cos(x * float64(j) * math.Pi / width)
}

func (Cosines) Expand(coefficients []float64, width float64) (function.Function, error) {
	s, err := function.NewCosineSeries(coefficients, width)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// SemicircleWeight is w(t) = √(1−t²), the Galerkin weight of the published
// runs. It vanishes outside [−1, 1].
var SemicircleWeight = function.Func(func(t float64) float64 {
	return math.Sqrt(max(0, 1-t*t))
})
