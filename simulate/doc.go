// SPDX-License-Identifier: MIT
// Package simulate runs many independent paths of a brownian.Process
// described by a config.Config and streams them to a Sink.
//
// Path i is generated from substream i of a single PCG stream, so any path of
// a run can be regenerated alone from (seed, i). Three modes exist:
//
//   - batch: GeneratePath with the direct (ziggurat) normal generator;
//   - sequential: NextObservation step by step with the inversion generator;
//   - inversion: one block of d·c uniforms per path through GeneratePathUniform.
//
// Sequential and inversion consume the stream identically, so with the same
// seed they produce the same paths.
//
// Runs are sequential; the context is checked between paths only.
package simulate
