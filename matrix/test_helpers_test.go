// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/hadjar2027/ssj/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for floating comparisons in kernel tests.
const tol = 1e-12

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic (non-*Dense) fallback paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// FromRows builds a *Dense from a rectangular literal.
func FromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows, len(rows), len(rows[0]))
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireAllClose asserts element-wise |a-b| ≤ eps with matching shapes.
func RequireAllClose(t *testing.T, want, got matrix.Matrix, eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	var i, j int
	for i = 0; i < want.Rows(); i++ {
		for j = 0; j < want.Cols(); j++ {
			w, g := MustAt(t, want, i, j), MustAt(t, got, i, j)
			if math.Abs(w-g) > eps {
				t.Fatalf("mismatch at [%d,%d]: want %g, got %g (eps %g)", i, j, w, g, eps)
			}
		}
	}
}

// RequireLowerTriangular asserts every entry above the diagonal is exactly zero.
func RequireLowerTriangular(t *testing.T, l matrix.Matrix) {
	t.Helper()
	var i, j int
	for i = 0; i < l.Rows(); i++ {
		for j = i + 1; j < l.Cols(); j++ {
			require.Zerof(t, MustAt(t, l, i, j), "L[%d,%d] above diagonal", i, j)
		}
	}
}

// Reconstruct returns L·Lᵗ.
func Reconstruct(t *testing.T, l matrix.Matrix) matrix.Matrix {
	t.Helper()
	lt, err := matrix.Transpose(l)
	require.NoError(t, err)
	out, err := matrix.Mul(l, lt)
	require.NoError(t, err)

	return out
}
