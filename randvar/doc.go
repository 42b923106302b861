// Package randvar supplies the random variates consumed by the Brownian path
// generator.
//
// The package provides:
//
//   - Stream: a source of uniform variates in the open interval (0,1).
//   - PCGStream: a seeded, reproducible Stream built on math/rand/v2 PCG, with
//     independent substreams (ResetNextSubstream) for replications.
//   - SliceStream: a replay Stream over a fixed block of uniforms, useful for
//     quasi-Monte-Carlo points and tests.
//   - NormalGen: standard normal variates drawn from a Stream, either by
//     inversion of the normal CDF (gonum distuv) or by Marsaglia's polar method.
//
// None of the types are safe for concurrent use; give each goroutine its own
// stream (see NewPCGStream and DeriveSeed).
package randvar
