// SPDX-License-Identifier: MIT
// Package ssj is a toolkit for sampling correlated multivariate Brownian
// motion, built for Monte-Carlo simulation.
//
// What it does
//
//	Given a dimension c, an initial state x0, drift mu, volatilities sigma and
//	a correlation matrix R, it samples paths of
//
//		dX = mu dt + L dW,   L·Lᵗ = Σ,   Σ[i][j] = R[i][j]·σ[i]·σ[j]
//
//	at observation times t0 < t1 < ... < td, either step by step or a whole
//	path at once, from any source of standard normals or uniforms.
//
// Packages
//
//	matrix/    row-major Dense, validators, kernels, Cholesky (PD fast path + PSD fallback), sample covariance/correlation
//	randvar/   uniform streams with substreams (PCG, replay), normal generators (inversion, polar, direct)
//	brownian/  the process: parameters, covariance, memoized factor, time grid, path generation
//	config/    YAML run configuration: strict decoding, validation, fingerprint
//	simulate/  multi-path runner, CSV/JSONL sinks, prometheus metrics, increment summary
//	cmd/mbm/   command line front end
//
// Quick example:
//
//	p, err := brownian.New(2, []float64{0, 0}, []float64{0, 0}, []float64{1, 2},
//		[][]float64{{1, 0.5}, {0.5, 1}},
//		randvar.NewInversionGen(randvar.NewPCGStream(7)),
//		brownian.WithEvenObservationTimes(0, 0.1, 10))
//	if err != nil { ... }
//	path, err := p.GeneratePath() // 11 rows of 2 values, row-major
//
// Guarantees
//
//   - Determinism: the same parameters, grid and variates give bit-identical paths.
//   - The factor is computed once per parameter version and reused.
//   - Core types are single-goroutine; run one Process per goroutine.
package ssj
