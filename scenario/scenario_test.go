package scenario_test

import (
	"testing"

	"github.com/katalvlaran/fredholm/function"
	"github.com/katalvlaran/fredholm/quadrature"
	"github.com/katalvlaran/fredholm/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// residual evaluates v(x)(1+d(x)) − ∫ b(t−x)v(t)dt − b(x)p + d(x), v = u − 1,
// with the integral truncated to [-span, span].
func residual(t *testing.T, s scenario.Scenario, x, span float64, nodes int) float64 {
	t.Helper()
	rule, err := quadrature.NewTrapezoid(nodes)
	require.NoError(t, err)

	v := func(y float64) float64 { return s.Exact.Eval(y) - 1 }
	conv := rule.Integrate(function.Func(func(y float64) float64 {
		return s.Birth.Eval(y-x) * v(y)
	}), -span, span)
	d := s.Death.Eval(x)

	return v(x)*(1+d) - conv - s.Birth.Eval(x)*s.Parameter + d
}

// TestExponent_ExactSolvesEquation checks the closed form against the equation.
func TestExponent_ExactSolvesEquation(t *testing.T) {
	s := scenario.Exponent(1, 1)
	for _, x := range []float64{0, 0.5, 2, 5} {
		assert.InDelta(t, 0, residual(t, s, x, 40, 40001), 1e-4, "x=%g", x)
	}
}

// TestRational_ExactSolvesEquation checks the closed form for p=1, n=2.
func TestRational_ExactSolvesEquation(t *testing.T) {
	s := scenario.Rational(1, 1, 2)
	for _, x := range []float64{0, 0.5, 2, 5} {
		assert.InDelta(t, 0, residual(t, s, x, 400, 200001), 1e-6, "x=%g", x)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"exponent", "rational"} {
		s, ok := scenario.ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, s.Name)
	}
	_, ok := scenario.ByName("missing")
	assert.False(t, ok)
	assert.Len(t, scenario.Defaults(), 2)
}
