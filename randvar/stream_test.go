// SPDX-License-Identifier: MIT
package randvar_test

import (
	"testing"

	"github.com/hadjar2027/ssj/randvar"
	"github.com/stretchr/testify/require"
)

func draw(s randvar.Stream, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Float64()
	}

	return out
}

func TestPCGStream_Reproducible(t *testing.T) {
	a := randvar.NewPCGStream(42)
	b := randvar.NewPCGStream(42)
	require.Equal(t, draw(a, 64), draw(b, 64)) // same seed, same sequence

	c := randvar.NewPCGStream(43)
	require.NotEqual(t, draw(randvar.NewPCGStream(42), 8), draw(c, 8))
}

func TestPCGStream_OpenInterval(t *testing.T) {
	s := randvar.NewPCGStream(7)
	for _, u := range draw(s, 10000) {
		require.Greater(t, u, 0.0)
		require.Less(t, u, 1.0)
	}
}

func TestPCGStream_ZeroSeedIsFixed(t *testing.T) {
	a := randvar.NewPCGStream(0)
	b := randvar.NewPCGStream(0)
	require.Equal(t, a.Seed(), b.Seed())
	require.Equal(t, draw(a, 4), draw(b, 4))
}

func TestPCGStream_Substreams(t *testing.T) {
	s := randvar.NewPCGStream(99)
	first := draw(s, 16)

	s.ResetStartSubstream()
	require.Equal(t, first, draw(s, 16)) // rewinding replays the substream

	s.ResetNextSubstream()
	require.Equal(t, uint64(1), s.Substream())
	second := draw(s, 16)
	require.NotEqual(t, first, second)

	s.ResetStartSubstream()
	require.Equal(t, second, draw(s, 16))

	s.ResetStartStream()
	require.Equal(t, uint64(0), s.Substream())
	require.Equal(t, first, draw(s, 16))
}

func TestDeriveSeed(t *testing.T) {
	require.Equal(t, randvar.DeriveSeed(1, 2), randvar.DeriveSeed(1, 2))
	require.NotEqual(t, randvar.DeriveSeed(1, 2), randvar.DeriveSeed(1, 3))
	require.NotEqual(t, randvar.DeriveSeed(1, 2), randvar.DeriveSeed(2, 2))
}

func TestSliceStream(t *testing.T) {
	src := []float64{0.1, 0.2, 0.3}
	s := randvar.NewSliceStream(src)
	src[0] = 0.9 // input is copied

	require.Equal(t, []float64{0.1, 0.2, 0.3, 0.1}, draw(s, 4)) // wraps around
	require.Equal(t, 1, s.Pos())

	s.ResetStartStream()
	require.Equal(t, 0.1, s.Float64())
	s.ResetNextSubstream()
	require.Equal(t, 0, s.Pos())

	require.Equal(t, 0.5, randvar.NewSliceStream(nil).Float64())
}

func TestIsNil(t *testing.T) {
	var pcg *randvar.PCGStream
	var replay *randvar.SliceStream
	require.True(t, randvar.IsNil(nil))
	require.True(t, randvar.IsNil(pcg))
	require.True(t, randvar.IsNil(replay))
	require.False(t, randvar.IsNil(randvar.NewPCGStream(1)))
	require.False(t, randvar.IsNil(randvar.NewSliceStream(nil)))
}
