// Package linsolve solves dense square linear systems A·x = b given as a
// flat row-major buffer plus its width.
//
// Two solvers satisfy the Solver contract:
//
//   - LU: Doolittle factorization without pivoting (package matrix). This is
//     the reference behaviour every published result was produced with.
//   - Pivoting: partial-pivoting LU from gonum/mat. More robust, but its
//     results differ in the last bits and it accepts systems LU rejects.
package linsolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fredholm/matrix"
)

// ErrIllConditioned indicates that the pivoting solver produced a result
// but the system's condition number exceeds mat.ConditionTolerance.
var ErrIllConditioned = errors.New("linsolve: system is ill-conditioned")

// Solver solves A·x = b where a holds width×width entries in row-major order.
//
// Errors: implementations return matrix.ErrDimensionMismatch when
// len(a) != width² or len(b) != width, and matrix.ErrSingular when the
// system cannot be solved.
type Solver interface {
	Solve(a []float64, width int, b []float64) ([]float64, error)
}

// validate enforces width² == len(a) and len(b) == width.
func validate(a []float64, width int, b []float64) error {
	if width <= 0 || len(a) != width*width {
		return fmt.Errorf("width=%d len(a)=%d: %w", width, len(a), matrix.ErrDimensionMismatch)
	}
	if len(b) != width {
		return fmt.Errorf("width=%d len(b)=%d: %w", width, len(b), matrix.ErrDimensionMismatch)
	}

	return nil
}

// LU is the reference solver: non-pivoting Doolittle LU followed by
// forward and back substitution.
type LU struct {
	// Workers bounds the goroutines used for the elimination updates;
	// < 1 means GOMAXPROCS.
	Workers int
	// Logger, when it has Debug enabled, receives the residual ‖A·x − b‖∞
	// of every solve. nil disables the check.
	Logger *slog.Logger
}

// Solve factorizes a (the buffer is not modified) and solves for b.
// Complexity: O(width³).
func (s LU) Solve(a []float64, width int, b []float64) ([]float64, error) {
	if err := validate(a, width, b); err != nil {
		return nil, fmt.Errorf("LU.Solve: %w", err)
	}
	m, err := matrix.NewDenseFrom(width, width, a)
	if err != nil {
		return nil, fmt.Errorf("LU.Solve: %w", err)
	}
	f, err := matrix.Factorize(m, s.Workers)
	if err != nil {
		return nil, fmt.Errorf("LU.Solve: %w", err)
	}
	x, err := f.Solve(b)
	if err != nil {
		return nil, fmt.Errorf("LU.Solve: %w", err)
	}

	if s.Logger != nil && s.Logger.Enabled(context.Background(), slog.LevelDebug) {
		ax, err := m.MatVec(x)
		if err != nil {
			return nil, fmt.Errorf("LU.Solve: %w", err)
		}
		s.Logger.Debug("lu residual", "width", width, "residual", floats.Distance(ax, b, math.Inf(1)))
	}

	return x, nil
}

// Pivoting solves with gonum's partial-pivoting LU.
type Pivoting struct{}

// Solve copies a into a mat.Dense, factorizes it and solves for b.
//
// Errors:
//   - matrix.ErrDimensionMismatch on shape errors.
//   - matrix.ErrSingular if the matrix is exactly singular.
//   - ErrIllConditioned if gonum reports a finite but excessive condition
//     number.
func (Pivoting) Solve(a []float64, width int, b []float64) ([]float64, error) {
	if err := validate(a, width, b); err != nil {
		return nil, fmt.Errorf("Pivoting.Solve: %w", err)
	}

	data := make([]float64, len(a))
	copy(data, a)
	var lu mat.LU
	lu.Factorize(mat.NewDense(width, width, data))

	rhs := make([]float64, width)
	copy(rhs, b)
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, mat.NewVecDense(width, rhs)); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) && !math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("Pivoting.Solve: cond=%g: %w", float64(cond), ErrIllConditioned)
		}

		return nil, fmt.Errorf("Pivoting.Solve: %v: %w", err, matrix.ErrSingular)
	}

	return x.RawVector().Data, nil
}
