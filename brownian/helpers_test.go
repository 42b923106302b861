// SPDX-License-Identifier: MIT
package brownian_test

import (
	"testing"

	"github.com/hadjar2027/ssj/brownian"
	"github.com/hadjar2027/ssj/randvar"
	"github.com/stretchr/testify/require"
)

// seqGen replays a fixed cycle of normals and counts draws.
type seqGen struct {
	vals  []float64
	pos   int
	calls int
	s     randvar.Stream
}

func (g *seqGen) NextNormal() float64 {
	g.calls++
	if len(g.vals) == 0 {
		return 0
	}
	v := g.vals[g.pos%len(g.vals)]
	g.pos++

	return v
}

func (g *seqGen) Stream() randvar.Stream { return g.s }

func (g *seqGen) SetStream(s randvar.Stream) error {
	if s == nil {
		return randvar.ErrNilStream
	}
	g.s = s

	return nil
}

func identity(c int) [][]float64 {
	r := make([][]float64, c)
	for i := range r {
		r[i] = make([]float64, c)
		r[i][i] = 1
	}

	return r
}

func constant(c int, v float64) []float64 {
	out := make([]float64, c)
	for i := range out {
		out[i] = v
	}

	return out
}

// independent2D is the reference two-coordinate setup: unit volatilities,
// zero drift, identity correlation, x0 = 0, times 0,1,2.
func independent2D(t *testing.T, gen randvar.NormalGen, opts ...brownian.Option) *brownian.Process {
	t.Helper()
	opts = append([]brownian.Option{brownian.WithObservationTimes([]float64{0, 1, 2})}, opts...)
	p, err := brownian.New(2, []float64{0, 0}, []float64{0, 0}, []float64{1, 1}, identity(2), gen, opts...)
	require.NoError(t, err)

	return p
}

// correlated builds a c=2 process with correlation rho on an even grid of d unit steps.
func correlated(t *testing.T, rho float64, d int, gen randvar.NormalGen, opts ...brownian.Option) *brownian.Process {
	t.Helper()
	corr := [][]float64{{1, rho}, {rho, 1}}
	opts = append([]brownian.Option{brownian.WithEvenObservationTimes(0, 1, d)}, opts...)
	p, err := brownian.New(2, []float64{0, 0}, []float64{0, 0}, []float64{1, 1}, corr, gen, opts...)
	require.NoError(t, err)

	return p
}
