// SPDX-License-Identifier: MIT
// Package: randvar
//
// normal.go - standard normal generators over a Stream.
//
// Contract:
//   • NextNormal returns N(0,1) variates.
//   • SetStream rebinds the uniform source and drops any cached state, so
//     the next variate depends only on the new stream.
//   • Constructors panic on a nil stream (programmer error), mirroring option
//     constructors; SetStream reports nil through ErrNilStream instead.
//     Typed-nil *PCGStream / *SliceStream count as nil (see IsNil).

package randvar

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrNilStream is returned when a nil Stream is bound to a generator.
	ErrNilStream = errors.New("randvar: nil stream")

	// ErrUnsupportedStream is returned when a generator cannot draw from the given Stream type.
	ErrUnsupportedStream = errors.New("randvar: unsupported stream type")
)

// NormalGen produces standard normal variates from an underlying Stream.
type NormalGen interface {
	// NextNormal returns the next N(0,1) variate.
	NextNormal() float64

	// Stream returns the bound uniform source.
	Stream() Stream

	// SetStream rebinds the uniform source.
	SetStream(s Stream) error
}

// InverseNormal is the standard normal quantile Φ⁻¹(u).
// u must lie in (0,1); 0 and 1 map to ∓Inf, values outside give NaN.
func InverseNormal(u float64) float64 {
	if math.IsNaN(u) || u < 0 || u > 1 {
		return math.NaN() // distuv panics outside [0,1]
	}

	return distuv.UnitNormal.Quantile(u)
}

// InversionGen draws one uniform per variate and inverts the normal CDF.
// One uniform per normal keeps a fixed mapping from stream positions to
// variates, which quasi-Monte-Carlo and common random numbers rely on.
type InversionGen struct {
	s Stream
}

var _ NormalGen = (*InversionGen)(nil)

// NewInversionGen binds an inversion generator to s. Panics on nil.
func NewInversionGen(s Stream) *InversionGen {
	if IsNil(s) {
		panic("randvar: NewInversionGen(nil)")
	}

	return &InversionGen{s: s}
}

// NextNormal returns Φ⁻¹(U) for the next uniform U.
func (g *InversionGen) NextNormal() float64 { return InverseNormal(g.s.Float64()) }

// Stream returns the bound stream.
func (g *InversionGen) Stream() Stream { return g.s }

// SetStream rebinds the stream.
func (g *InversionGen) SetStream(s Stream) error {
	if IsNil(s) {
		return ErrNilStream
	}
	g.s = s

	return nil
}

// PolarGen is Marsaglia's polar method: two uniforms in, two normals out,
// the second one cached for the next call.
type PolarGen struct {
	s         Stream
	spare     float64
	haveSpare bool
}

var _ NormalGen = (*PolarGen)(nil)

// NewPolarGen binds a polar generator to s. Panics on nil.
func NewPolarGen(s Stream) *PolarGen {
	if IsNil(s) {
		panic("randvar: NewPolarGen(nil)")
	}

	return &PolarGen{s: s}
}

// NextNormal returns the cached variate if any, otherwise draws a fresh pair.
// Complexity: expected 4/π rejection rounds.
func (g *PolarGen) NextNormal() float64 {
	if g.haveSpare {
		g.haveSpare = false
		return g.spare
	}

	var v1, v2, w float64
	for {
		v1 = 2*g.s.Float64() - 1
		v2 = 2*g.s.Float64() - 1
		w = v1*v1 + v2*v2
		if w > 0 && w < 1 {
			break
		}
	}
	f := math.Sqrt(-2 * math.Log(w) / w)
	g.spare, g.haveSpare = v2*f, true

	return v1 * f
}

// Stream returns the bound stream.
func (g *PolarGen) Stream() Stream { return g.s }

// SetStream rebinds the stream and discards the cached variate.
func (g *PolarGen) SetStream(s Stream) error {
	if IsNil(s) {
		return ErrNilStream
	}
	g.s = s
	g.haveSpare = false

	return nil
}

// DirectGen samples with the ziggurat normal of a PCGStream.
// Fastest option; the mapping from stream position to variate is not fixed.
type DirectGen struct {
	s *PCGStream
}

var _ NormalGen = (*DirectGen)(nil)

// NewDirectGen binds a direct generator to s. Panics on nil.
func NewDirectGen(s *PCGStream) *DirectGen {
	if s == nil {
		panic("randvar: NewDirectGen(nil)")
	}

	return &DirectGen{s: s}
}

// NextNormal returns the next ziggurat variate.
func (g *DirectGen) NextNormal() float64 { return g.s.NormFloat64() }

// Stream returns the bound stream.
func (g *DirectGen) Stream() Stream { return g.s }

// SetStream rebinds the stream; only *PCGStream is accepted.
func (g *DirectGen) SetStream(s Stream) error {
	if IsNil(s) {
		return ErrNilStream
	}
	p, ok := s.(*PCGStream)
	if !ok {
		return ErrUnsupportedStream
	}
	g.s = p

	return nil
}
