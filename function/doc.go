// Package function defines the scalar function abstraction shared by every
// solver in fredholm, together with the concrete variants the solvers produce.
//
// 🚀 What is a Function?
//
//	Anything that maps x ↦ f(x) for real x. Inputs such as birth and death
//	probabilities are plain closures (Func); outputs of the solvers are
//	tabulated or series representations:
//	  • Func                — wraps an arbitrary Go closure
//	  • PointFunction       — n samples over [left, right] with interpolation
//	  • EvenPowerPolynomial — Σ cₙ·x²ⁿ
//	  • CosineSeries        — Σ cₙ·cos(nπx/width)
//
// ✨ Guarantees:
//   - Eval is pure and safe for concurrent use; every variant is immutable
//     after construction.
//   - Sample never divides by zero: n < 2 returns ErrInvalidSampling.
//
// ⚙️ Usage:
//
//	birth := function.Func(func(x float64) float64 { return math.Exp(-2 * math.Abs(x)) })
//	pts, err := function.Sample(birth, 0, 15, 100)
package function
