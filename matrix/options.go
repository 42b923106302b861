// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - Every default below is consumed by a kernel and covered by tests.
package matrix

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// (symmetry) and by the semi-definite Cholesky fallback (zero-pivot detection).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)
