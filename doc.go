// Package fredholm solves the integral equation of a birth–death branching
// process numerically,
//
//	v(x)·(1+d(x)) = ∫ b(t−x)·v(t) dt + b(x)·p − d(x),   u(x) = 1 + v(x),
//
// with four interchangeable methods, and measures them against scenarios
// whose exact solution is known.
//
// 🚀 What is inside?
//
//	function/   — Function interface, closures, tabulated and series variants
//	parallel/   — fork-join loops over index ranges (errgroup)
//	quadrature/ — parallel composite trapezoid Integrator
//	matrix/     — flat row-major Dense, non-pivoting LU, substitutions
//	linsolve/   — Solver contract: reference LU and gonum partial pivoting
//	method/     — Method contract: Nyström, Neumann, Galerkin (two bases)
//	scenario/   — exponent and rational scenarios with closed-form u
//	harness/    — error statistics, CSV output and gonum/plot charts
//	cmd/fredholm — CLI driving harness over scenarios × methods
//
// ✨ Quick start:
//
//	s := scenario.Exponent(1, 1)
//	nys, _ := method.NewNystrom(linsolve.LU{}, 2000)
//	u, err := nys.Solve(s.Birth, s.Death, s.Parameter, 15)
//
// or, from the shell:
//
//	go run ./cmd/fredholm run --method nystrom --nodes 2000 --plot
package fredholm
