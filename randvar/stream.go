// SPDX-License-Identifier: MIT
// Package: randvar
//
// stream.go - uniform sources.
//
// Contract:
//   • Float64 returns values strictly inside (0,1); inversion methods rely on it.
//   • Same seed ⇒ identical sequence across platforms (PCG is specified bit-exactly).
//   • Substreams are derived with a SplitMix64 finalizer so that neighbouring
//     substream indices are decorrelated.

package randvar

import (
	"math/rand/v2"
)

// defaultSeed is used when callers pass seed==0, keeping the zero value reproducible.
const defaultSeed uint64 = 0x5eed

// Stream is a source of independent uniform variates on (0,1).
type Stream interface {
	// Float64 returns the next uniform variate in the open interval (0,1).
	Float64() float64
}

// Substreamer is a Stream partitioned into reproducible substreams.
// Replications of a simulation usually advance to a fresh substream per path.
type Substreamer interface {
	Stream

	// ResetStartStream rewinds to the first substream.
	ResetStartStream()

	// ResetStartSubstream rewinds to the beginning of the current substream.
	ResetStartSubstream()

	// ResetNextSubstream moves to the beginning of the next substream.
	ResetNextSubstream()
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
// SplitMix64 finalizer; small changes in the inputs give well-spread outputs.
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// PCGStream is a seeded uniform stream with substreams.
// Substream k is a fresh PCG keyed by DeriveSeed(seed, 2k) and DeriveSeed(seed, 2k+1).
type PCGStream struct {
	seed      uint64
	substream uint64
	src       *rand.PCG
	rng       *rand.Rand
}

var _ Substreamer = (*PCGStream)(nil)

// NewPCGStream returns a stream positioned at the start of substream 0.
// seed==0 selects a fixed default seed (never the clock).
func NewPCGStream(seed uint64) *PCGStream {
	if seed == 0 {
		seed = defaultSeed
	}
	s := &PCGStream{seed: seed, src: rand.NewPCG(0, 0)}
	s.rng = rand.New(s.src)
	s.ResetStartStream()

	return s
}

// Seed returns the root seed of the stream.
func (s *PCGStream) Seed() uint64 { return s.seed }

// Substream returns the index of the current substream.
func (s *PCGStream) Substream() uint64 { return s.substream }

// Float64 returns a uniform in (0,1); an exact 0 from the generator is redrawn.
func (s *PCGStream) Float64() float64 {
	for {
		if u := s.rng.Float64(); u > 0 {
			return u
		}
	}
}

// NormFloat64 exposes the ziggurat normal of math/rand/v2 on the same state.
// Used by DirectGen; it consumes the stream differently from inversion.
func (s *PCGStream) NormFloat64() float64 { return s.rng.NormFloat64() }

// ResetStartStream rewinds to substream 0.
func (s *PCGStream) ResetStartStream() {
	s.substream = 0
	s.ResetStartSubstream()
}

// ResetStartSubstream rewinds to the beginning of the current substream.
func (s *PCGStream) ResetStartSubstream() {
	s.src.Seed(DeriveSeed(s.seed, 2*s.substream), DeriveSeed(s.seed, 2*s.substream+1))
}

// ResetNextSubstream advances to the next substream.
func (s *PCGStream) ResetNextSubstream() {
	s.substream++
	s.ResetStartSubstream()
}

// IsNil reports whether s is nil or a typed-nil stream of this package.
// Complexity: O(1), no reflection.
func IsNil(s Stream) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *PCGStream:
		return v == nil
	case *SliceStream:
		return v == nil
	default:
		return false
	}
}

// SliceStream replays a fixed block of uniforms, wrapping around at the end.
// Values are taken verbatim; callers supply points inside (0,1). A stored 0
// or 1 inverts to ±Inf, which brownian reports as ErrNonFinite.
type SliceStream struct {
	u   []float64
	pos int
}

var _ Substreamer = (*SliceStream)(nil)

// NewSliceStream copies u. An empty block yields 0.5 forever.
func NewSliceStream(u []float64) *SliceStream {
	cp := make([]float64, len(u))
	copy(cp, u)

	return &SliceStream{u: cp}
}

// Float64 returns the next stored uniform.
func (s *SliceStream) Float64() float64 {
	if len(s.u) == 0 {
		return 0.5
	}
	v := s.u[s.pos]
	s.pos++
	if s.pos == len(s.u) {
		s.pos = 0
	}

	return v
}

// Pos is the index of the next value to be returned.
func (s *SliceStream) Pos() int { return s.pos }

// ResetStartStream rewinds to the first value.
func (s *SliceStream) ResetStartStream() { s.pos = 0 }

// ResetStartSubstream rewinds to the first value; a SliceStream has a single substream.
func (s *SliceStream) ResetStartSubstream() { s.pos = 0 }

// ResetNextSubstream rewinds to the first value.
func (s *SliceStream) ResetNextSubstream() { s.pos = 0 }
