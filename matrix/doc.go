// Package matrix is the small dense linear-algebra layer underneath the
// Brownian path generator.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors and
//     an aliasing RowView for tight loops.
//   - Kernels used per time step and per parameter change: Mul, Transpose,
//     Scale and the allocation-free MatVecInto.
//   - Cholesky, which factors a symmetric positive semi-definite covariance
//     matrix. Positive definite input goes through gonum's mat.Cholesky;
//     singular input (zero variances, perfectly correlated pairs) falls back
//     to a native kernel that emits zero columns for zero pivots.
//   - Covariance and Correlation of sample columns, used to check simulated
//     increments against the configured correlation.
//
// All public functions validate their operands and return sentinel errors
// (ErrDimensionMismatch, ErrNotPositiveSemiDefinite, ...) wrapped with the
// operation name, so callers match them with errors.Is.
package matrix
