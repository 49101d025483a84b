package method

import (
	"fmt"
	"time"

	"github.com/katalvlaran/fredholm/function"
	"github.com/katalvlaran/fredholm/linsolve"
	"github.com/katalvlaran/fredholm/parallel"
	"github.com/katalvlaran/fredholm/quadrature"
)

// Galerkin projects the equation onto the first degree/2 functions of a
// Basis under the weight w(clamp(x/width, −1, 1)) on [-width, width].
//
// With h(t,x) = −b(t−x)/(1+d(x)) and y(x) = (b(x)·p − d(x))/(1+d(x)):
//
//	A[j][k] = ∫ w·φ_j(x)·(φ_k(x) + ∫ h(t,x)·φ_k(t) dt) dx
//	r[j]    = ∫ w·y(x)·φ_j(x) dx
//
// The inner integral is evaluated afresh at every outer quadrature node.
// The solution of A·c = r gets 1 added to c_0 (φ_0 ≡ 1 for both bases)
// and is returned through Basis.Expand.
type Galerkin struct {
	integrator quadrature.Integrator
	solver     linsolve.Solver
	weight     function.Function
	degree     int
	basis      Basis
	opts       Options
}

// NewGalerkin returns a Galerkin method over basis with a system of size
// degree/2.
//
// Errors: ErrNilCollaborator (nil integrator, solver, weight or basis),
// ErrInvalidDegree (degree < 2).
func NewGalerkin(
	integrator quadrature.Integrator,
	solver linsolve.Solver,
	weight function.Function,
	degree int,
	basis Basis,
	opts ...Option,
) (*Galerkin, error) {
	switch {
	case integrator == nil:
		return nil, fmt.Errorf("NewGalerkin: integrator: %w", ErrNilCollaborator)
	case solver == nil:
		return nil, fmt.Errorf("NewGalerkin: solver: %w", ErrNilCollaborator)
	case weight == nil:
		return nil, fmt.Errorf("NewGalerkin: weight: %w", ErrNilCollaborator)
	case basis == nil:
		return nil, fmt.Errorf("NewGalerkin: basis: %w", ErrNilCollaborator)
	case degree < 2:
		return nil, fmt.Errorf("NewGalerkin(degree=%d): %w", degree, ErrInvalidDegree)
	}

	return &Galerkin{
		integrator: integrator,
		solver:     solver,
		weight:     weight,
		degree:     degree,
		basis:      basis,
		opts:       gatherOptions(opts),
	}, nil
}

// NewPolynomialGalerkin is NewGalerkin with the EvenPowers basis.
func NewPolynomialGalerkin(integrator quadrature.Integrator, solver linsolve.Solver, weight function.Function, degree int, opts ...Option) (*Galerkin, error) {
	return NewGalerkin(integrator, solver, weight, degree, EvenPowers{}, opts...)
}

// NewCosineGalerkin is NewGalerkin with the Cosines basis.
func NewCosineGalerkin(integrator quadrature.Integrator, solver linsolve.Solver, weight function.Function, degree int, opts ...Option) (*Galerkin, error) {
	return NewGalerkin(integrator, solver, weight, degree, Cosines{}, opts...)
}

// Size returns the dimension degree/2 of the projected system.
func (g *Galerkin) Size() int { return g.degree / 2 }

// Solve assembles and solves the projected system. Every A[j][k] and r[j]
// is an independent unit of work.
//
// Complexity: Size()² outer integrals, each with one inner integral per
// outer node, plus the solver.
func (g *Galerkin) Solve(birth, death function.Function, parameter, width float64) (function.Function, error) {
	eq, err := newEquation("Galerkin.Solve", birth, death, parameter, width)
	if err != nil {
		return nil, err
	}

	size := g.Size()
	base := func(x float64, j int) float64 { return g.basis.Eval(x, j, width) }
	weight := func(x float64) float64 {
		return g.weight.Eval(min(max(x/width, -1), 1))
	}

	start := time.Now()
	a := make([]float64, size*size)
	parallel.For(size*size, g.opts.Workers, func(idx int) {
		j, k := idx/size, idx%size
		outer := function.Func(func(x float64) float64 {
			den := 1 + eq.death.Eval(x)
			inner := function.Func(func(t float64) float64 {
				return -eq.birth.Eval(t-x) / den * base(t, k)
			})

			return weight(x) * base(x, j) * (base(x, k) + g.integrator.Integrate(inner, -width, width))
		})
		a[idx] = g.integrator.Integrate(outer, -width, width)
	})

	r := make([]float64, size)
	parallel.For(size, g.opts.Workers, func(j int) {
		r[j] = g.integrator.Integrate(function.Func(func(x float64) float64 {
			return weight(x) * eq.source(x) * base(x, j)
		}), -width, width)
	})
	g.opts.Logger.Debug("galerkin system assembled",
		"basis", g.basis.Name(), "size", size, "elapsed", time.Since(start))

	c, err := g.solver.Solve(a, size, r)
	if err != nil {
		return nil, fmt.Errorf("Galerkin.Solve(%s): %w", g.basis.Name(), err)
	}
	c[0]++

	return g.basis.Expand(c, width)
}
