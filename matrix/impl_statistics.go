// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the sample statistics used to sanity-check simulated paths:
//     column centering, sample covariance and Pearson correlation.
//   - Compose canonical kernels (Transpose/Mul/Scale) instead of re-implementing products.
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)         // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)        // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - Correlation(X)   -> (Corr, means, stds) // Pearson corr via z-scoring; std=0 → zeroed column
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.
//
// AI-Hints:
//   - Rows are observations (e.g. one simulated path each), columns are coordinates.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// toDense returns X as *Dense, copying through At when X is another implementation.
func toDense(X Matrix) (*Dense, error) {
	if d, ok := X.(*Dense); ok {
		return d, nil
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Accumulate column sums in a deterministic pass, divide by r.
//   - Stage 3: Write the centered copy; X itself is never mutated.
//
// Returns:
//   - Matrix: centered copy (r×c).
//   - []float64: column means (len=c).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
func CenterColumns(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	src, err := toDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := src.r, src.c
	means := make([]float64, c)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += src.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	out, err := NewDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	out.validateNaNInf = src.validateNaNInf
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			out.data[base+j] = src.data[base+j] - means[j]
		}
	}

	return out, means, nil
}

// Covariance computes the sample covariance of the columns of X.
// Implementation:
//   - Stage 1: Validate X, require r>=2 (sample denominator).
//   - Stage 2: Center columns; Cov = (Xcᵀ Xc)/(r-1) via Transpose/Mul/Scale.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2), wrapped kernel errors.
//
// Complexity:
//   - Time O(r*c^2), Space O(c^2).
//
// Notes:
//   - Result is positive semi-definite on well-formed data (modulo numeric noise),
//     so it can be fed back into Cholesky.
func Covariance(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return cov, means, nil
}

// Correlation computes the Pearson correlation of the columns of X via z-scoring:
// Corr = (Zᵀ Z)/(r-1) with Z = (X − mean) * diag(1/std).
// Degenerate std==0 → that column becomes all zeros (and so does its row/column in Corr).
//
// Implementation:
//   - Stage 1: Validate X, require r>=2; center columns.
//   - Stage 2: Sample stds per column; scale centered columns in place by 1/std.
//   - Stage 3: Corr = (Zᵀ Z)/(r-1) via canonical kernels.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2), wrapped kernel errors.
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c + c^2).
//
// AI-Hints:
//   - Scale-invariant: Corr(α*X) == Corr(X) for α>0 on non-degenerate columns.
func Correlation(X Matrix) (Matrix, []float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	r, c := X.Rows(), X.Cols()
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrDimensionMismatch)
	}

	centered, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Z := centered.(*Dense) // CenterColumns always returns *Dense

	stds := make([]float64, c)
	inv := 1.0 / float64(r-1)
	var i, j, base int
	var v float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			v = Z.data[base+j]
			stds[j] += v * v
		}
	}
	invStd := make([]float64, c)
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(stds[j] * inv)
		if stds[j] > 0 {
			invStd[j] = 1.0 / stds[j]
		}
	}

	// Z-score in place; Z is our private copy.
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			Z.data[base+j] *= invStd[j]
		}
	}

	Zt, err := Transpose(Z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	G, err := Mul(Zt, Z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	corr, err := Scale(G, inv)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	return corr, means, stds, nil
}
