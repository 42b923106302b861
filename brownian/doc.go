// Package brownian generates sample paths of a correlated multivariate
// Brownian motion
//
//	dX(t) = mu dt + L dW(t),   L·Lᵗ = Σ,   Σ[i][j] = R[i][j]·σ[i]·σ[j]
//
// observed on a discrete time grid t[0] ≤ t[1] ≤ … ≤ t[d].
//
// A Process owns its parameters (dimension c, initial vector x0, drift mu,
// volatility sigma, correlation R), the covariance matrix Σ derived from them,
// a lazily computed Cholesky factor L, the time grid with its cached step
// sizes, and a flat path buffer of (d+1)·c values with a cursor.
//
// Two ways of consuming randomness are supported:
//
//   - Sequential: NextObservation and friends advance the path one step at a
//     time, drawing standard normals from the bound randvar.NormalGen.
//   - Batch: GeneratePathFrom builds the whole path from a caller-supplied block
//     of d·c standard normal shocks (step-major, then coordinate), which makes
//     the path a pure function of the block. GeneratePathUniform does the same
//     from a block of uniforms (quasi-Monte-Carlo points) by inversion.
//
// Within a step every coordinate shares the same shock vector Z, so the
// increment L·Z has covariance Σ·dt. The PerCoordinateShock mode reproduces
// the legacy sequential behavior, which draws a fresh vector for every
// coordinate and therefore does not reproduce the target correlation.
//
// Batch methods return the live path buffer unless WithCopyOnReturn is set;
// a later generation call overwrites it in place.
//
// A Process is not safe for concurrent use. Give each goroutine its own
// Process and its own stream.
package brownian
