// Package scenario provides birth–death configurations whose exact solution
// is known in closed form, for validating the solvers.
package scenario

import (
	"math"

	"github.com/katalvlaran/fredholm/function"
)

// Scenario bundles the inputs of a Method.Solve call with the exact u.
type Scenario struct {
	// Name prefixes output files, e.g. "exponent".
	Name      string
	Birth     function.Function
	Death     function.Function
	Parameter float64
	Exact     function.Function
}

// Exponent uses the birth kernel b(x) = e^{−2|x|} and a death rate built so
// that the exact solution is u(x) = 1 + e^{−|x|}·(a·x² + bb).
func Exponent(a, bb float64) Scenario {
	q := func(x float64) float64 {
		return a*x*x/3 - 16.0/9.0*a*math.Abs(x) + 56.0/27.0*a + bb/3
	}
	r := func(x float64) float64 { return a*x*x + bb }

	return Scenario{
		Name: "exponent",
		Birth: function.Func(func(x float64) float64 {
			return math.Exp(-2 * math.Abs(x))
		}),
		Death: function.Func(func(x float64) float64 {
			e := math.Exp(-math.Abs(x))
			return e * q(x) / (1 + e*r(x))
		}),
		Parameter: 2.0/3.0*bb + 52.0/27.0*a,
		Exact: function.Func(func(x float64) float64 {
			return 1 + math.Exp(-math.Abs(x))*r(x)
		}),
	}
}

// Rational uses the Cauchy birth kernel b(x) = p / (π·(x² + p²)) and a
// rational death rate a / (x² + (n+1)²·p²). The closed-form solution below
// holds for p = 1, n = 2; other values produce a consistent equation whose
// Exact field is only indicative.
func Rational(p, a float64, n int) Scenario {
	p2 := p * p
	k := float64(n+1) * float64(n+1) * p2

	return Scenario{
		Name: "rational",
		Birth: function.Func(func(x float64) float64 {
			return p / (x*x + p2) / math.Pi
		}),
		Death: function.Func(func(x float64) float64 {
			return a / (x*x + k)
		}),
		Parameter: a * math.Pi * (a + 5*p2) * (a + 8*p2) /
			(p * (a*a + 21*a*p2 + 120*p2*p2)),
		Exact: function.Func(func(x float64) float64 {
			return 1 + 24/(71*(x*x+1)) + 40/(71*(x*x+4))
		}),
	}
}

// Defaults returns the two scenarios with the coefficients used for the
// published comparison runs.
func Defaults() []Scenario {
	return []Scenario{Exponent(1, 1), Rational(1, 1, 2)}
}

// ByName returns the default scenario called name.
func ByName(name string) (Scenario, bool) {
	for _, s := range Defaults() {
		if s.Name == name {
			return s, true
		}
	}

	return Scenario{}, false
}
