package matrix

import (
	"fmt"

	"github.com/katalvlaran/fredholm/parallel"
)

// ZeroPivot is the sentinel for detecting a zero pivot in LU.
const ZeroPivot = 0.0

// parallelRows is the smallest trailing block (rows below the pivot) whose
// update is spread across workers; smaller blocks run inline.
const parallelRows = 64

// LU holds a Doolittle factorization A = L·U packed into one square buffer:
// the strictly lower part stores L (its unit diagonal is implied), the upper
// part including the diagonal stores U.
type LU struct {
	n      int
	packed *Dense
}

// Factorize performs Doolittle LU decomposition of the square matrix a
// without pivoting. a is not modified.
//
// Algorithm (right-looking elimination on a copy D of A):
//
//	for k = 0..n-1:
//	  p = D[k][k]; p == 0 ⇒ ErrSingular
//	  for i > k:            (independent rows, run across workers)
//	    L[i][k] = D[i][k] / p
//	    D[i][j] -= L[i][k]·D[k][j]   for j > k
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare/ErrDimensionMismatch on invalid input.
//   - ErrSingular when an exactly zero pivot is met. Tiny pivots are not
//     detected and can silently degrade accuracy.
//
// Complexity: O(n³) time, O(n²) memory.
func Factorize(a *Dense, workers int) (*LU, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("LU: %w", err)
	}
	n := a.r
	d := a.Clone()
	data := d.data

	for k := 0; k < n; k++ {
		pivot := data[k*n+k]
		if pivot == ZeroPivot {
			return nil, fmt.Errorf("LU: zero pivot at layer %d: %w", k, ErrSingular)
		}
		pivotRow := data[k*n+k+1 : (k+1)*n]

		// eliminate row i = k+1+r against the pivot row
		eliminate := func(r int) {
			off := (k + 1 + r) * n
			f := data[off+k] / pivot
			data[off+k] = f
			row := data[off+k+1 : off+n]
			for j, v := range pivotRow {
				row[j] -= f * v
			}
		}

		rows := n - k - 1
		if rows < parallelRows || parallel.Workers(workers) == 1 {
			for r := 0; r < rows; r++ {
				eliminate(r)
			}
			continue
		}
		parallel.Chunks(rows, workers, func(_, lo, hi int) {
			for r := lo; r < hi; r++ {
				eliminate(r)
			}
		})
	}

	return &LU{n: n, packed: d}, nil
}

// Size returns the system width n.
func (f *LU) Size() int { return f.n }

// L returns the unit lower triangular factor as a fresh Dense.
// Complexity: O(n²).
func (f *LU) L() *Dense {
	l, _ := NewDense(f.n, f.n)
	for i := 0; i < f.n; i++ {
		copy(l.data[i*f.n:i*f.n+i], f.packed.data[i*f.n:i*f.n+i])
		l.data[i*f.n+i] = 1
	}

	return l
}

// U returns the upper triangular factor as a fresh Dense.
// Complexity: O(n²).
func (f *LU) U() *Dense {
	u, _ := NewDense(f.n, f.n)
	for i := 0; i < f.n; i++ {
		copy(u.data[i*f.n+i:(i+1)*f.n], f.packed.data[i*f.n+i:(i+1)*f.n])
	}

	return u
}

// Solve returns x with L·U·x = b: forward substitution followed by back
// substitution on the packed factors.
//
// Errors: ErrDimensionMismatch if len(b) != Size().
// Complexity: O(n²).
func (f *LU) Solve(b []float64) ([]float64, error) {
	v, err := ForwardSubstitution(f.packed, b)
	if err != nil {
		return nil, fmt.Errorf("LU.Solve: %w", err)
	}
	x, err := BackSubstitution(f.packed, v)
	if err != nil {
		return nil, fmt.Errorf("LU.Solve: %w", err)
	}

	return x, nil
}
