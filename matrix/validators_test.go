// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/hadjar2027/ssj/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix) // typed nil is caught too
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateSquareNonNil(t *testing.T) {
	require.NoError(t, matrix.ValidateSquareNonNil(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquareNonNil(MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
}

func TestValidateVecLen(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 4)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, MustDense(t, 2, 3)), matrix.ErrNilMatrix)
}

func TestValidateSymmetric(t *testing.T) {
	sym := FromRows(t, [][]float64{{1, 0.5}, {0.5, 2}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.NoError(t, matrix.ValidateSymmetric(hide{sym}, -1e-12)) // negative tol is flipped

	asym := FromRows(t, [][]float64{{1, 0.5}, {0.4, 2}})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-3), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, 0.2))

	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
}

func TestValidateFinite(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, matrix.ValidateFinite(m))
	require.NoError(t, matrix.ValidateFinite(hide{m}))
}
