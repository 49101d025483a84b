// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fredholm/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquare covers nil, square and rectangular inputs.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) *matrix.Dense {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name     string
		m        *matrix.Dense
		wantErrs []error
	}{
		{"nil", nil, []error{matrix.ErrNilMatrix}},
		{"square", dense(3, 3), nil},
		{"wide", dense(2, 3), []error{matrix.ErrNonSquare, matrix.ErrDimensionMismatch}},
		{"tall", dense(3, 1), []error{matrix.ErrNonSquare, matrix.ErrDimensionMismatch}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.wantErrs == nil {
				require.NoError(t, err)
				return
			}
			for _, want := range tc.wantErrs {
				require.ErrorIs(t, err, want)
			}
		})
	}
}

// TestValidateVecLen checks exact length matching.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen(make([]float64, 4), 4))
	require.ErrorIs(t, matrix.ValidateVecLen(make([]float64, 3), 4), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 1), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen(nil, 0))
}

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m))
}
