// SPDX-License-Identifier: MIT
// Package: brownian
//
// params.go - parameter store: validation, storage and invalidation.
//
// Contract:
//   • Validation happens before any mutation; a failed update leaves the
//     process exactly as it was.
//   • Every successful update rebuilds Σ, bumps the parameter version (which
//     stales the cached factor) and, when a time grid is set, rebuilds the
//     path buffer and step caches.

package brownian

import (
	"fmt"
	"log/slog"
	"math"
)

// SetParams replaces every parameter. Inputs longer than c are truncated to c;
// the process keeps its own copies.
//
// Errors:
//   - ErrInvalidDimension when c < 1.
//   - *DimensionMismatchError (matches ErrDimensionMismatch) naming x0, mu,
//     sigma, corr (rows) or corr[i] (columns of row i).
//   - ErrNonFinite for NaN/Inf entries.
func (p *Process) SetParams(c int, x0, mu, sigma []float64, corr [][]float64) error {
	if c < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDimension, c)
	}
	if err := validateVectors(c, x0, mu, sigma); err != nil {
		return err
	}
	if err := checkLen("corr", len(corr), c); err != nil {
		return err
	}
	for i := 0; i < c; i++ {
		if err := checkLen(fmt.Sprintf("corr[%d]", i), len(corr[i]), c); err != nil {
			return err
		}
		if err := checkFinite(fmt.Sprintf("corr[%d]", i), corr[i][:c]); err != nil {
			return err
		}
	}

	p.c = c
	p.x0 = clonePrefix(x0, c)
	p.mu = clonePrefix(mu, c)
	p.sigma = clonePrefix(sigma, c)
	p.corr = make([][]float64, c)
	for i := range p.corr {
		p.corr[i] = clonePrefix(corr[i], c)
	}
	p.shock = make([]float64, c)
	p.lz = make([]float64, c)

	return p.paramsChanged()
}

// SetVectors replaces x0, mu and sigma, keeping the dimension and the
// correlation matrix. Lengths are still checked against the current dimension.
//
// Errors: *DimensionMismatchError, ErrNonFinite.
func (p *Process) SetVectors(x0, mu, sigma []float64) error {
	if err := validateVectors(p.c, x0, mu, sigma); err != nil {
		return err
	}
	p.x0 = clonePrefix(x0, p.c)
	p.mu = clonePrefix(mu, p.c)
	p.sigma = clonePrefix(sigma, p.c)

	return p.paramsChanged()
}

// paramsChanged rebuilds Σ, stales the factor and refreshes the grid-derived state.
func (p *Process) paramsChanged() error {
	cov, err := buildCovariance(p.corr, p.sigma, p.c)
	if err != nil {
		return err
	}
	p.cov = cov
	p.version++
	p.logger.Debug("brownian parameters updated",
		slog.Int("dimension", p.c),
		slog.Uint64("version", p.version),
	)
	if p.timesSet {
		p.initGrid()
	}

	return nil
}

func validateVectors(c int, x0, mu, sigma []float64) error {
	for _, v := range []struct {
		name string
		val  []float64
	}{
		{"x0", x0},
		{"mu", mu},
		{"sigma", sigma},
	} {
		if err := checkLen(v.name, len(v.val), c); err != nil {
			return err
		}
		if err := checkFinite(v.name, v.val[:c]); err != nil {
			return err
		}
	}

	return nil
}

func checkFinite(name string, v []float64) error {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %s[%d] = %g", ErrNonFinite, name, i, x)
		}
	}

	return nil
}

func clonePrefix(v []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, v[:n])

	return out
}

// Dimension returns c.
func (p *Process) Dimension() int { return p.c }

// Version returns the parameter version; it increases on every successful update.
func (p *Process) Version() uint64 { return p.version }

// Mu returns the drift vector itself, not a copy. Writes through the returned
// slice change the drift used by subsequent steps; they do not bump the
// parameter version (drift does not enter Σ).
func (p *Process) Mu() []float64 { return p.mu }

// X0 returns a copy of the initial vector.
func (p *Process) X0() []float64 { return clonePrefix(p.x0, p.c) }

// Sigma returns a copy of the volatility vector.
func (p *Process) Sigma() []float64 { return clonePrefix(p.sigma, p.c) }

// Correlation returns a copy of the c×c correlation matrix.
func (p *Process) Correlation() [][]float64 {
	out := make([][]float64, p.c)
	for i := range out {
		out[i] = clonePrefix(p.corr[i], p.c)
	}

	return out
}

// Covariance returns a copy of Σ as rows.
func (p *Process) Covariance() [][]float64 { return p.cov.ToRows() }
