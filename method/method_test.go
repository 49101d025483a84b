package method_test

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/fredholm/function"
	"github.com/katalvlaran/fredholm/linsolve"
	"github.com/katalvlaran/fredholm/matrix"
	"github.com/katalvlaran/fredholm/method"
	"github.com/katalvlaran/fredholm/quadrature"
	"github.com/katalvlaran/fredholm/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	zero       = function.Func(func(float64) float64 { return 0 })
	one        = function.Func(func(float64) float64 { return 1 })
	semicircle = method.SemicircleWeight
)

func trapezoid(t *testing.T, n int) *quadrature.Trapezoid {
	t.Helper()
	rule, err := quadrature.NewTrapezoid(n)
	require.NoError(t, err)

	return rule
}

// methods returns every method configured small enough for unit tests.
func methods(t *testing.T, opts ...method.Option) map[string]method.Method {
	t.Helper()
	nys, err := method.NewNystrom(linsolve.LU{}, 60, opts...)
	require.NoError(t, err)
	neu, err := method.NewNeumann(4, 40, trapezoid(t, 60), opts...)
	require.NoError(t, err)
	poly, err := method.NewPolynomialGalerkin(trapezoid(t, 101), linsolve.LU{}, semicircle, 6, opts...)
	require.NoError(t, err)
	cos, err := method.NewCosineGalerkin(trapezoid(t, 101), linsolve.LU{}, semicircle, 6, opts...)
	require.NoError(t, err)

	return map[string]method.Method{
		"nystrom":       nys,
		"neumann":       neu,
		"galerkin-poly": poly,
		"galerkin-cos":  cos,
	}
}

var probes = []float64{0, 0.3, 1, 1.7, 2}

// TestMethods_NoBirthNoDeathGivesOne: with b ≡ 0 and d ≡ 0 the equation
// collapses to v = 0, so every method must return u ≡ 1.
func TestMethods_NoBirthNoDeathGivesOne(t *testing.T) {
	for name, m := range methods(t) {
		u, err := m.Solve(zero, zero, 0.7, 2)
		require.NoError(t, err, name)
		for _, x := range probes {
			assert.InDelta(t, 1.0, u.Eval(x), 1e-12, "%s x=%g", name, x)
		}
	}
}

// TestMethods_ConstantDeath: b ≡ 0, d ≡ 1 gives v = −d/(1+d), u ≡ 1/2.
// Constants lie in both Galerkin bases, so the projection is exact too.
func TestMethods_ConstantDeath(t *testing.T) {
	for name, m := range methods(t) {
		u, err := m.Solve(zero, one, 3, 2)
		require.NoError(t, err, name)
		for _, x := range probes {
			assert.InDelta(t, 0.5, u.Eval(x), 1e-9, "%s x=%g", name, x)
		}
	}
}

// TestMethods_InputValidation covers nil functions and bad widths.
func TestMethods_InputValidation(t *testing.T) {
	for name, m := range methods(t) {
		_, err := m.Solve(nil, zero, 0, 1)
		assert.ErrorIs(t, err, method.ErrNilFunction, name)
		_, err = m.Solve(zero, nil, 0, 1)
		assert.ErrorIs(t, err, method.ErrNilFunction, name)

		for _, w := range []float64{0, -1, math.Inf(1), math.NaN()} {
			_, err = m.Solve(zero, zero, 0, w)
			assert.ErrorIs(t, err, method.ErrInvalidWidth, "%s width=%g", name, w)
		}
	}
}

// TestMethods_Idempotent: repeated solves share no state.
func TestMethods_Idempotent(t *testing.T) {
	s := scenario.Exponent(1, 1)
	for name, m := range methods(t) {
		first, err := m.Solve(s.Birth, s.Death, s.Parameter, 3)
		require.NoError(t, err, name)
		second, err := m.Solve(s.Birth, s.Death, s.Parameter, 3)
		require.NoError(t, err, name)
		for _, x := range []float64{0, 0.4, 1.1, 2.9} {
			assert.InDelta(t, first.Eval(x), second.Eval(x), 1e-12, "%s x=%g", name, x)
		}
	}
}

// TestMethods_Constructors checks configuration errors.
func TestMethods_Constructors(t *testing.T) {
	rule := trapezoid(t, 10)

	_, err := method.NewNystrom(nil, 10)
	assert.ErrorIs(t, err, method.ErrNilCollaborator)
	_, err = method.NewNystrom(linsolve.LU{}, 1)
	assert.ErrorIs(t, err, method.ErrInvalidNodeCount)

	_, err = method.NewNeumann(-1, 10, rule)
	assert.ErrorIs(t, err, method.ErrInvalidIterations)
	_, err = method.NewNeumann(1, 1, rule)
	assert.ErrorIs(t, err, method.ErrInvalidNodeCount)
	_, err = method.NewNeumann(1, 10, nil)
	assert.ErrorIs(t, err, method.ErrNilCollaborator)

	_, err = method.NewPolynomialGalerkin(rule, linsolve.LU{}, semicircle, 1)
	assert.ErrorIs(t, err, method.ErrInvalidDegree)
	_, err = method.NewCosineGalerkin(nil, linsolve.LU{}, semicircle, 4)
	assert.ErrorIs(t, err, method.ErrNilCollaborator)
	_, err = method.NewGalerkin(rule, nil, semicircle, 4, method.Cosines{})
	assert.ErrorIs(t, err, method.ErrNilCollaborator)
	_, err = method.NewGalerkin(rule, linsolve.LU{}, nil, 4, method.Cosines{})
	assert.ErrorIs(t, err, method.ErrNilCollaborator)
	_, err = method.NewGalerkin(rule, linsolve.LU{}, semicircle, 4, nil)
	assert.ErrorIs(t, err, method.ErrNilCollaborator)

	g, err := method.NewPolynomialGalerkin(rule, linsolve.LU{}, semicircle, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Size())
}

// TestGalerkin_ZeroWeightIsSingular: a vanishing weight makes every matrix
// entry zero, and the solver's ErrSingular must reach the caller.
func TestGalerkin_ZeroWeightIsSingular(t *testing.T) {
	g, err := method.NewCosineGalerkin(trapezoid(t, 21), linsolve.LU{}, zero, 4)
	require.NoError(t, err)
	_, err = g.Solve(zero, one, 1, 1)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// brokenSolver reports a dimension mismatch for every system.
type brokenSolver struct{}

func (brokenSolver) Solve([]float64, int, []float64) ([]float64, error) {
	return nil, matrix.ErrDimensionMismatch
}

func TestNystrom_PropagatesSolverError(t *testing.T) {
	m, err := method.NewNystrom(brokenSolver{}, 5)
	require.NoError(t, err)
	_, err = m.Solve(zero, zero, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestNeumann_ZeroRounds returns the starting guess u ≡ 1.
func TestNeumann_ZeroRounds(t *testing.T) {
	m, err := method.NewNeumann(0, 10, trapezoid(t, 10))
	require.NoError(t, err)
	u, err := m.Solve(one, one, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, u.Eval(0.5))
}

// TestNeumann_LogsEveryRound checks the Debug progress records.
func TestNeumann_LogsEveryRound(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m, err := method.NewNeumann(3, 10, trapezoid(t, 20), method.WithLogger(logger), method.WithWorkers(2))
	require.NoError(t, err)
	_, err = m.Solve(zero, one, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(buf.String(), "neumann round"))
}

// TestWithBlend selects the interpolation of tabulated results.
func TestWithBlend(t *testing.T) {
	for _, b := range []function.Blend{function.BlendReference, function.BlendLinear} {
		m, err := method.NewNystrom(linsolve.LU{}, 5, method.WithBlend(b))
		require.NoError(t, err)
		u, err := m.Solve(zero, one, 0, 1)
		require.NoError(t, err)
		require.IsType(t, &function.PointFunction{}, u)
		assert.InDelta(t, 0.5, u.Eval(0.3), 1e-12)
	}
}

// recordingSolver keeps the last system it was asked to solve and returns
// the zero vector.
type recordingSolver struct {
	a, b []float64
}

func (r *recordingSolver) Solve(a []float64, width int, b []float64) ([]float64, error) {
	r.a = append([]float64(nil), a...)
	r.b = append([]float64(nil), b...)

	return make([]float64, width), nil
}

// TestNystrom_AssembledSystem pins the quadrature weights on three nodes of
// [0, 2] with b(z) = 1 + z, d ≡ 1, p = 0, so k(x, y) = (1 + y − x)/2.
// Column 0 carries k(x, 0)/2 without a mirrored term, the interior column
// k(x, y) + k(x, −y), and the last column half of that.
func TestNystrom_AssembledSystem(t *testing.T) {
	rec := &recordingSolver{}
	m, err := method.NewNystrom(rec, 3)
	require.NoError(t, err)

	birth := function.Func(func(z float64) float64 { return 1 + z })
	_, err = m.Solve(birth, one, 0, 2)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{
		-0.75, 1, 0.5,
		0, -1, 0,
		-0.25, -1, -1.5,
	}, rec.a, 1e-15)
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 0.5}, rec.b, 1e-15)
}
