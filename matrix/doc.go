// Package matrix provides the dense linear-algebra kernels behind the
// integral-equation solvers.
//
// The package provides:
//
//   - Dense, a flat row-major float64 matrix (len(data) == rows·cols).
//   - Factorize, Doolittle LU factorization without pivoting, with the
//     trailing update of each elimination layer spread across workers.
//   - ForwardSubstitution and BackSubstitution for triangular systems.
//
// No pivoting is performed: a zero pivot fails with ErrSingular, while a
// tiny non-zero pivot is accepted and may lose accuracy. Callers that need
// robustness over reproducibility should use a pivoting solver instead
// (see package linsolve).
package matrix
