package method

import (
	"fmt"
	"time"

	"github.com/katalvlaran/fredholm/function"
	"github.com/katalvlaran/fredholm/linsolve"
	"github.com/katalvlaran/fredholm/parallel"
)

// Nystrom replaces the integral by the trapezoid rule on nodeCount uniform
// nodes of [0, width], folding the mirrored half [-width, 0] onto the grid
// through the symmetry of the solution, and solves the resulting dense
// system once.
type Nystrom struct {
	solver    linsolve.Solver
	nodeCount int
	opts      Options
}

// NewNystrom returns a Nyström method on nodeCount nodes.
//
// Errors: ErrNilCollaborator (nil solver), ErrInvalidNodeCount (< 2).
func NewNystrom(solver linsolve.Solver, nodeCount int, opts ...Option) (*Nystrom, error) {
	if solver == nil {
		return nil, fmt.Errorf("NewNystrom: solver: %w", ErrNilCollaborator)
	}
	if nodeCount < 2 {
		return nil, fmt.Errorf("NewNystrom(%d): %w", nodeCount, ErrInvalidNodeCount)
	}

	return &Nystrom{solver: solver, nodeCount: nodeCount, opts: gatherOptions(opts)}, nil
}

// Solve assembles A·v = r with, for node x_j and column y_i = i·step,
//
//	k(x,y)  = b(y−x) / (1+d(x))
//	A[j][i] = step·w_i·(k(x_j, y_i) + k(x_j, −y_i)) − δ_ij
//	r[j]    = −(b(x_j)·p − d(x_j)) / (1+d(x_j))
//
// where the mirrored term is dropped at y_0 = 0 and the trapezoid weights
// w_0 = w_{n-1} = ½, w_i = 1 otherwise. Rows are assembled in parallel.
// The result is a PointFunction over [0, width].
//
// Complexity: O(n²) kernel evaluations plus the solver (O(n³) for LU).
func (m *Nystrom) Solve(birth, death function.Function, parameter, width float64) (function.Function, error) {
	eq, err := newEquation("Nystrom.Solve", birth, death, parameter, width)
	if err != nil {
		return nil, err
	}

	n := m.nodeCount
	step := width / float64(n-1)
	a := make([]float64, n*n)
	r := make([]float64, n)

	start := time.Now()
	parallel.For(n, m.opts.Workers, func(j int) {
		x := float64(j) * step
		den := 1 + eq.death.Eval(x)
		k := func(y float64) float64 { return eq.birth.Eval(y-x) / den }

		row := a[j*n : (j+1)*n]
		for i := range row {
			y := float64(i) * step
			var kk float64
			switch i {
			case n - 1:
				kk = (k(y) + k(-y)) / 2
			case 0:
				kk = k(y) / 2
			default:
				kk = k(y) + k(-y)
			}
			row[i] = kk * step
			if i == j {
				row[i]--
			}
		}
		r[j] = -eq.source(x)
	})
	m.opts.Logger.Debug("nystrom system assembled", "nodes", n, "elapsed", time.Since(start))

	start = time.Now()
	v, err := m.solver.Solve(a, n, r)
	if err != nil {
		return nil, fmt.Errorf("Nystrom.Solve: %w", err)
	}
	m.opts.Logger.Debug("nystrom system solved", "nodes", n, "elapsed", time.Since(start))

	u, err := function.NewPointFunction(plusOne(v), 0, width, m.opts.Blend)
	if err != nil {
		return nil, fmt.Errorf("Nystrom.Solve: %w", err)
	}

	return u, nil
}
