// Package matrix_test contains unit tests for the dense kernels.
package matrix_test

import (
	"testing"

	"github.com/hadjar2027/ssj/matrix"
	"github.com/stretchr/testify/require"
)

func TestMul(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := FromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := FromRows(t, [][]float64{{58, 64}, {139, 154}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireAllClose(t, want, got, tol)

	// Fallback path must agree with the *Dense fast-path.
	got, err = matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	RequireAllClose(t, want, got, tol)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := FromRows(t, [][]float64{{1, 4}, {2, 5}, {3, 6}})

	for _, in := range []matrix.Matrix{a, hide{a}} {
		got, err := matrix.Transpose(in)
		require.NoError(t, err)
		RequireAllClose(t, want, got, 0)
	}

	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale(t *testing.T) {
	a := FromRows(t, [][]float64{{1, -2}, {0.5, 4}})
	want := FromRows(t, [][]float64{{-2, 4}, {-1, -8}})

	for _, in := range []matrix.Matrix{a, hide{a}} {
		got, err := matrix.Scale(in, -2)
		require.NoError(t, err)
		RequireAllClose(t, want, got, 0)
	}
}

func TestMatVecInto_Generic(t *testing.T) {
	l := FromRows(t, [][]float64{{2, 0, 0}, {1, 3, 0}, {-1, 0.5, 1}})
	x := []float64{1, 2, 0}
	y := make([]float64, 3)

	require.NoError(t, matrix.MatVecInto(y, l, x))
	require.Equal(t, []float64{2, 7, 0}, y)

	require.NoError(t, matrix.MatVecInto(y, hide{l}, x))
	require.Equal(t, []float64{2, 7, 0}, y)

	require.ErrorIs(t, matrix.MatVecInto(y, l, []float64{1}), matrix.ErrDimensionMismatch)
}

func TestMatVecInto(t *testing.T) {
	l := FromRows(t, [][]float64{{1, 0}, {0.5, 2}})
	dst := []float64{99, 99} // stale content must be overwritten

	require.NoError(t, matrix.MatVecInto(dst, l, []float64{2, 1}))
	require.Equal(t, []float64{2, 3}, dst)

	require.ErrorIs(t, matrix.MatVecInto(make([]float64, 3), l, []float64{1, 1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.MatVecInto(dst, nil, []float64{1, 1}), matrix.ErrNilMatrix)
}
