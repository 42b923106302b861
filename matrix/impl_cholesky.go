// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Factor a symmetric covariance matrix Σ into a lower-triangular L with L·Lᵗ = Σ.
//   - Accept semi-definite input (zero variance coordinates, perfectly correlated pairs)
//     which a strict positive-definite factorization rejects.
//
// Design:
//   - Fast path: gonum mat.Cholesky on a mat.SymDense (LAPACK-grade, positive definite only).
//   - Fallback: a deterministic Cholesky–Banachiewicz kernel that maps |pivot| ≤ tol to a
//     zero column and rejects negative pivots with ErrNotPositiveSemiDefinite.
//
// AI-Hints:
//   - The result is always a fresh *Dense; the input is never mutated.
//   - Use Mul(L, Transpose(L)) in tests to confirm reconstruction.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const opCholesky = "Cholesky"

// Cholesky factors a symmetric positive semi-definite matrix using DefaultEpsilon.
// See CholeskyWithTol for the full contract.
func Cholesky(m Matrix) (*Dense, error) {
	return CholeskyWithTol(m, DefaultEpsilon)
}

// CholeskyWithTol returns the lower-triangular L with L·Lᵗ = m.
// Implementation:
//   - Stage 1: Validate m (non-nil, square, finite, symmetric within tol·scale).
//   - Stage 2: Try gonum mat.Cholesky (strictly positive definite input).
//   - Stage 3: On rejection run the semi-definite kernel with pivot tolerance tol·scale,
//     where scale = max(1, max_i |m[i,i]|).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNaNInf, ErrAsymmetry,
//     ErrNotPositiveSemiDefinite; all wrapped with the "Cholesky" tag.
//
// Determinism:
//   - Both paths are deterministic for a given input.
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func CholeskyWithTol(m Matrix, tol float64) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return nil, matrixErrorf(opCholesky, ErrNaNInf)
	}
	tol = math.Abs(tol)

	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	n := a.r

	scale := 1.0
	for i := 0; i < n; i++ {
		if v := math.Abs(a.data[i*n+i]); v > scale {
			scale = v
		}
	}
	tol *= scale

	if err = ValidateSymmetric(a, tol); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	if l, ok := choleskyGonum(a); ok {
		return l, nil
	}

	l, err := choleskySemiDefinite(a, tol)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	return l, nil
}

// choleskyGonum runs the positive-definite factorization from gonum.
// mat.NewSymDense reads the upper triangle; the validated input is symmetric so either half works.
func choleskyGonum(a *Dense) (*Dense, bool) {
	n := a.r
	buf := make([]float64, len(a.data))
	copy(buf, a.data) // gonum keeps a reference to the backing slice
	sym := mat.NewSymDense(n, buf)

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, false
	}
	var tri mat.TriDense
	chol.LTo(&tri)

	l, err := NewDense(n, n)
	if err != nil {
		return nil, false
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			l.data[i*n+j] = tri.At(i, j)
		}
	}

	return l, true
}

// choleskySemiDefinite is the row-oriented Cholesky–Banachiewicz recurrence
//
//	L[j][j] = sqrt(A[j][j] − Σ_{k<j} L[j][k]²)
//	L[i][j] = (A[i][j] − Σ_{k<j} L[i][k]·L[j][k]) / L[j][j],  i > j
//
// with the semi-definite policy: a pivot in [−tol, tol] yields a zero column,
// provided every off-diagonal residual below it is within tol as well.
func choleskySemiDefinite(a *Dense, tol float64) (*Dense, error) {
	n := a.r
	l, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var i, j, k int
	var d, s float64
	for j = 0; j < n; j++ {
		d = a.data[j*n+j]
		for k = 0; k < j; k++ {
			d -= l.data[j*n+k] * l.data[j*n+k]
		}
		if d < -tol {
			return nil, fmt.Errorf("pivot %d = %g: %w", j, d, ErrNotPositiveSemiDefinite)
		}

		if d <= tol {
			// Zero pivot: the whole column must vanish.
			for i = j + 1; i < n; i++ {
				s = a.data[i*n+j]
				for k = 0; k < j; k++ {
					s -= l.data[i*n+k] * l.data[j*n+k]
				}
				if math.Abs(s) > tol {
					return nil, fmt.Errorf("column %d residual %g below zero pivot: %w", j, s, ErrNotPositiveSemiDefinite)
				}
			}
			continue
		}

		ljj := math.Sqrt(d)
		l.data[j*n+j] = ljj
		for i = j + 1; i < n; i++ {
			s = a.data[i*n+j]
			for k = 0; k < j; k++ {
				s -= l.data[i*n+k] * l.data[j*n+k]
			}
			l.data[i*n+j] = s / ljj
		}
	}

	return l, nil
}
