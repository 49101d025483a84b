// Package method implements four numerical strategies for the integral
// equation of a birth–death branching process,
//
//	v(x)·(1+d(x)) = ∫ b(t−x)·v(t) dt + b(x)·p − d(x),   u(x) = 1 + v(x),
//
// where b is the birth probability, d the death probability and p a scalar
// parameter. Every strategy satisfies the Method contract and returns u as a
// function.Function:
//
//   - Nystrom:  quadrature discretization on [0, width], one dense solve.
//   - Neumann:  fixed-point iteration of the right-hand side on [0, width].
//   - Galerkin: weighted projection on [-width, width] onto a Basis:
//     EvenPowers (x^{2j}) or Cosines (cos(jπx/width)).
//
// Methods own their collaborators (integrator, linear solver, weight); the
// birth and death functions passed to Solve are borrowed for the duration of
// the call and are evaluated concurrently.
//
// ⚙️ Usage:
//
//	nys, _ := method.NewNystrom(linsolve.LU{}, 5000)
//	u, err := nys.Solve(birth, death, parameter, 15)
//	if errors.Is(err, matrix.ErrSingular) { ... }
package method
