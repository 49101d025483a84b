package method

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/fredholm/function"
	"github.com/katalvlaran/fredholm/parallel"
	"github.com/katalvlaran/fredholm/quadrature"
)

// Neumann iterates v ← T(v) starting from v ≡ 0 on nodeCount uniform
// nodes of [0, width], where
//
//	T(v)(x) = [∫_0^width (b(t−x) + b(t+x))·v(t) dt + b(x)·p − d(x)] / (1+d(x)).
//
// Inside the integral v is piecewise constant: v(t) is the sample at the
// nearest grid node at or below t. Exactly iterCount rounds are run; there
// is no convergence test, so kernels whose operator norm is not below one
// diverge.
type Neumann struct {
	iterCount  int
	nodeCount  int
	integrator quadrature.Integrator
	opts       Options
}

// NewNeumann returns a Neumann iteration with iterCount rounds.
//
// Errors: ErrInvalidIterations (< 0), ErrInvalidNodeCount (< 2),
// ErrNilCollaborator (nil integrator).
func NewNeumann(iterCount, nodeCount int, integrator quadrature.Integrator, opts ...Option) (*Neumann, error) {
	switch {
	case iterCount < 0:
		return nil, fmt.Errorf("NewNeumann(iter=%d): %w", iterCount, ErrInvalidIterations)
	case nodeCount < 2:
		return nil, fmt.Errorf("NewNeumann(nodes=%d): %w", nodeCount, ErrInvalidNodeCount)
	case integrator == nil:
		return nil, fmt.Errorf("NewNeumann: integrator: %w", ErrNilCollaborator)
	}

	return &Neumann{
		iterCount:  iterCount,
		nodeCount:  nodeCount,
		integrator: integrator,
		opts:       gatherOptions(opts),
	}, nil
}

// Solve runs the rounds and returns u = 1 + v as a PointFunction over
// [0, width].
//
// Each round reads only the previous round's samples and writes a separate
// buffer, so nodes are updated in parallel; the buffers swap once every
// node has been written.
//
// Complexity: iterCount·nodeCount integrals.
func (m *Neumann) Solve(birth, death function.Function, parameter, width float64) (function.Function, error) {
	eq, err := newEquation("Neumann.Solve", birth, death, parameter, width)
	if err != nil {
		return nil, err
	}

	n := m.nodeCount
	step := width / float64(n-1)
	prev := make([]float64, n)
	next := make([]float64, n)

	for round := 0; round < m.iterCount; round++ {
		cur := prev
		lookup := func(t float64) float64 {
			idx := int(t / step)
			if idx < 0 {
				idx = 0
			} else if idx >= n {
				idx = n - 1
			}

			return cur[idx]
		}

		parallel.For(n, m.opts.Workers, func(i int) {
			x := float64(i) * step
			integrand := function.Func(func(t float64) float64 {
				return (eq.birth.Eval(t-x) + eq.birth.Eval(t+x)) * lookup(t)
			})
			d := eq.death.Eval(x)
			next[i] = (m.integrator.Integrate(integrand, 0, width) + eq.birth.Eval(x)*eq.parameter - d) / (1 + d)
		})

		m.opts.Logger.Debug("neumann round",
			"round", round+1,
			"delta", floats.Distance(next, prev, math.Inf(1)))
		prev, next = next, prev
	}

	u, err := function.NewPointFunction(plusOne(prev), 0, width, m.opts.Blend)
	if err != nil {
		return nil, fmt.Errorf("Neumann.Solve: %w", err)
	}

	return u, nil
}
