// SPDX-License-Identifier: MIT
// Package: brownian
//
// factor.go - memoized Cholesky factor of Σ.
//
// The cache is keyed by the parameter version rather than a boolean flag:
// a factor computed for version v is served only while the process is still
// at version v. Nothing is cached when the factorization fails.

package brownian

import (
	"fmt"
	"log/slog"

	"github.com/hadjar2027/ssj/matrix"
)

// factorCache holds L together with the parameter version it was computed for.
type factorCache struct {
	l       *matrix.Dense
	version uint64
}

// cholesky returns the cached L, computing it on first use after an update.
// The returned matrix is internal storage; callers must not modify it.
//
// Implementation:
//   - Stage 1: Serve the cache when factor.version == version.
//   - Stage 2: Factor Σ via matrix.Cholesky (gonum fast path, semi-definite fallback).
//   - Stage 3: Store L under the current version.
//
// Errors:
//   - ErrDecomposition joined with the matrix error (ErrNotPositiveSemiDefinite,
//     ErrAsymmetry, ...); both stay matchable with errors.Is.
//
// Complexity:
//   - O(1) on a hit, O(c³) on a miss.
func (p *Process) cholesky() (*matrix.Dense, error) {
	if p.factor.l != nil && p.factor.version == p.version {
		return p.factor.l, nil
	}

	l, err := matrix.Cholesky(p.cov)
	if err != nil {
		p.logger.Debug("brownian covariance factorization failed",
			slog.Uint64("version", p.version),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", ErrDecomposition, err)
	}
	p.factor = factorCache{l: l, version: p.version}
	p.logger.Debug("brownian covariance factorized",
		slog.Int("dimension", p.c),
		slog.Uint64("version", p.version),
	)

	return l, nil
}

// Factor returns a copy of the lower-triangular L with L·Lᵗ = Σ,
// computing it if the parameters changed since the last call.
//
// Errors: ErrDecomposition (see cholesky).
func (p *Process) Factor() (*matrix.Dense, error) {
	l, err := p.cholesky()
	if err != nil {
		return nil, err
	}

	return l.Clone().(*matrix.Dense), nil
}
