// SPDX-License-Identifier: MIT
package brownian_test

import (
	"math"
	"testing"

	"github.com/hadjar2027/ssj/brownian"
	"github.com/stretchr/testify/require"
)

func TestSetObservationTimes(t *testing.T) {
	p, err := brownian.New(2, []float64{3, 4}, []float64{0, 0}, []float64{1, 1}, identity(2), &seqGen{})
	require.NoError(t, err)
	require.Nil(t, p.ObservationTimes())
	require.Zero(t, p.NumObservationTimes())

	times := []float64{0, 0.25, 0.25, 1}
	require.NoError(t, p.SetObservationTimes(times))
	times[1] = 99 // copied

	require.Equal(t, []float64{0, 0.25, 0.25, 1}, p.ObservationTimes())
	require.Equal(t, 3, p.NumObservationTimes())
	require.Len(t, p.Path(), 4*2)
	require.Equal(t, []float64{3, 4}, p.Path()[:2])
	require.True(t, p.HasNextObservation())

	// A zero-length step is allowed and adds drift/noise of zero.
	_, err = p.GeneratePathFrom([]float64{1, 1, 5, 5, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3.5, 4.5}, p.Path()[2:4])
	require.Equal(t, []float64{3.5, 4.5}, p.Path()[4:6])
}

func TestSetObservationTimes_Errors(t *testing.T) {
	p, err := brownian.New(1, []float64{0}, []float64{0}, []float64{1}, identity(1), &seqGen{})
	require.NoError(t, err)

	require.ErrorIs(t, p.SetObservationTimes([]float64{0}), brownian.ErrDimensionMismatch)
	require.ErrorIs(t, p.SetObservationTimes([]float64{0, 2, 1}), brownian.ErrTimeNotIncreasing)
	require.ErrorIs(t, p.SetObservationTimes([]float64{0, math.Inf(1)}), brownian.ErrNonFinite)

	require.ErrorIs(t, p.SetEvenObservationTimes(0, 1, 0), brownian.ErrInvalidDimension)
	require.ErrorIs(t, p.SetEvenObservationTimes(0, 0, 3), brownian.ErrTimeNotIncreasing)
	require.ErrorIs(t, p.SetEvenObservationTimes(math.NaN(), 1, 3), brownian.ErrNonFinite)
}

func TestSetEvenObservationTimes(t *testing.T) {
	p, err := brownian.New(1, []float64{0}, []float64{2}, []float64{0}, identity(1), &seqGen{})
	require.NoError(t, err)
	require.NoError(t, p.SetEvenObservationTimes(1, 0.5, 4))
	require.Equal(t, []float64{1, 1.5, 2, 2.5, 3}, p.ObservationTimes())

	path, err := p.GeneratePath()
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2, 3, 4}, path)
}

func TestObservation_Range(t *testing.T) {
	p := independent2D(t, &seqGen{})
	_, err := p.Observation(-1)
	require.ErrorIs(t, err, brownian.ErrObservationIndex)
	_, err = p.Observation(3)
	require.ErrorIs(t, err, brownian.ErrObservationIndex)

	row, err := p.Observation(0)
	require.NoError(t, err)
	row[0] = 42 // copy
	require.Equal(t, 0.0, p.Path()[0])
}

func TestPathCopy(t *testing.T) {
	p := independent2D(t, &seqGen{})
	cp := p.PathCopy()
	cp[0] = 1
	require.Equal(t, 0.0, p.Path()[0])

	bare, err := brownian.New(1, []float64{0}, []float64{0}, []float64{1}, identity(1), &seqGen{})
	require.NoError(t, err)
	require.Nil(t, bare.PathCopy())
}
