// SPDX-License-Identifier: MIT
// Package: brownian
//
// covariance.go - Σ from the correlation matrix and the volatilities.

package brownian

import (
	"github.com/hadjar2027/ssj/matrix"
)

// buildCovariance returns Σ with Σ[i][j] = R[i][j]·σ[i]·σ[j] for i, j < c.
// σ[i]·σ[j] is formed first so Σ is bit-for-bit symmetric whenever R is;
// R is not checked here (Cholesky does).
//
// Inputs are validated by the caller (finite, at least c×c / c long).
// Complexity: O(c²).
func buildCovariance(corr [][]float64, sigma []float64, c int) (*matrix.Dense, error) {
	cov, err := matrix.NewDense(c, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	var row []float64
	for i = 0; i < c; i++ {
		if row, err = cov.RowView(i); err != nil {
			return nil, err
		}
		for j = 0; j < c; j++ {
			row[j] = corr[i][j] * (sigma[i] * sigma[j])
		}
	}

	return cov, nil
}
