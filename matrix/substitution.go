package matrix

import "fmt"

// ForwardSubstitution solves L·v = b front-to-back for a unit lower
// triangular L. Only the strictly lower part of l is read, so a packed LU
// buffer may be passed directly.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) != n).
// Complexity: O(n²).
func ForwardSubstitution(l *Dense, b []float64) ([]float64, error) {
	if err := ValidateSquare(l); err != nil {
		return nil, fmt.Errorf("ForwardSubstitution: %w", err)
	}
	n := l.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("ForwardSubstitution: %w", err)
	}

	v := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		row := l.data[i*n : i*n+i]
		for j, lij := range row {
			sum -= lij * v[j]
		}
		v[i] = sum
	}

	return v, nil
}

// BackSubstitution solves U·x = v back-to-front for an upper triangular U,
// dividing by its diagonal. Only the upper part of u (diagonal included) is
// read.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(v) != n),
// ErrSingular on a zero diagonal element.
// Complexity: O(n²).
func BackSubstitution(u *Dense, v []float64) ([]float64, error) {
	if err := ValidateSquare(u); err != nil {
		return nil, fmt.Errorf("BackSubstitution: %w", err)
	}
	n := u.r
	if err := ValidateVecLen(v, n); err != nil {
		return nil, fmt.Errorf("BackSubstitution: %w", err)
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		diag := u.data[i*n+i]
		if diag == ZeroPivot {
			return nil, fmt.Errorf("BackSubstitution: zero diagonal at %d: %w", i, ErrSingular)
		}
		sum := v[i]
		for j := i + 1; j < n; j++ {
			sum -= u.data[i*n+j] * x[j]
		}
		x[i] = sum / diag
	}

	return x, nil
}
