// SPDX-License-Identifier: MIT
package brownian_test

import (
	"errors"
	"math"
	"testing"

	"github.com/hadjar2027/ssj/brownian"
	"github.com/stretchr/testify/require"
)

func TestNew_DimensionMismatch(t *testing.T) {
	ok := constant(3, 1)
	short := constant(2, 1)
	shortRow := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 1}}

	cases := []struct {
		name   string
		x0     []float64
		mu     []float64
		sigma  []float64
		corr   [][]float64
		arg    string
		actual int
	}{
		{"x0", short, ok, ok, identity(3), "x0", 2},
		{"mu", ok, short, ok, identity(3), "mu", 2},
		{"sigma", ok, ok, short, identity(3), "sigma", 2},
		{"corr rows", ok, ok, ok, identity(3)[:2], "corr", 2},
		{"corr columns", ok, ok, ok, identity(2), "corr", 2},
		{"corr first row", ok, ok, ok, [][]float64{{1, 0}, {0, 1, 0}, {0, 0, 1}}, "corr[0]", 2},
		{"corr later row", ok, ok, ok, shortRow, "corr[2]", 2},
		{"empty corr", ok, ok, ok, nil, "corr", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := brownian.New(3, tc.x0, tc.mu, tc.sigma, tc.corr, &seqGen{})
			require.ErrorIs(t, err, brownian.ErrDimensionMismatch)

			var dm *brownian.DimensionMismatchError
			require.True(t, errors.As(err, &dm))
			require.Equal(t, 3, dm.Expected)
			require.Equal(t, tc.actual, dm.Actual)
			require.Contains(t, err.Error(), tc.arg)
		})
	}
}

func TestDimensionMismatchError_Message(t *testing.T) {
	_, err := brownian.New(3, []float64{0, 0}, constant(3, 0), constant(3, 1), identity(3), &seqGen{})
	require.EqualError(t, err, "brownian: x0 dimension 2 is smaller than the required 3")
}

func TestNew_OtherErrors(t *testing.T) {
	_, err := brownian.New(0, nil, nil, nil, nil, &seqGen{})
	require.ErrorIs(t, err, brownian.ErrInvalidDimension)

	_, err = brownian.New(1, []float64{0}, []float64{0}, []float64{1}, identity(1), nil)
	require.ErrorIs(t, err, brownian.ErrNilGenerator)

	_, err = brownian.NewWithStream(1, []float64{0}, []float64{0}, []float64{1}, identity(1), nil)
	require.ErrorIs(t, err, brownian.ErrNilStream)

	_, err = brownian.New(1, []float64{0}, []float64{math.NaN()}, []float64{1}, identity(1), &seqGen{})
	require.ErrorIs(t, err, brownian.ErrNonFinite)

	_, err = brownian.New(1, []float64{0}, []float64{0}, []float64{1}, [][]float64{{math.Inf(1)}}, &seqGen{})
	require.ErrorIs(t, err, brownian.ErrNonFinite)
}

func TestSetParams_LongerInputsAreTruncated(t *testing.T) {
	p, err := brownian.New(2, []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9},
		[][]float64{{1, 0, 9}, {0, 1, 9}, {9, 9, 9}}, &seqGen{})
	require.NoError(t, err)
	require.Equal(t, 2, p.Dimension())
	require.Equal(t, []float64{1, 2}, p.X0())
	require.Equal(t, []float64{4, 5}, p.Mu())
	require.Equal(t, []float64{7, 8}, p.Sigma())
	require.Equal(t, identity(2), p.Correlation())
}

func TestSetParams_FailureLeavesStateUntouched(t *testing.T) {
	p := independent2D(t, &seqGen{})
	before := p.Version()

	err := p.SetParams(3, constant(3, 0), constant(3, 0), constant(2, 1), identity(3))
	require.ErrorIs(t, err, brownian.ErrDimensionMismatch)
	require.Equal(t, 2, p.Dimension())
	require.Equal(t, before, p.Version())
	require.Len(t, p.Path(), 3*2)
}

func TestSetParams_RebuildsGridForNewDimension(t *testing.T) {
	p := independent2D(t, &seqGen{vals: []float64{1}})
	_, err := p.NextObservation()
	require.NoError(t, err)
	require.Equal(t, 1, p.CurrentObservationIndex())

	require.NoError(t, p.SetParams(3, []float64{1, 2, 3}, constant(3, 0), constant(3, 1), identity(3)))
	require.Equal(t, 0, p.CurrentObservationIndex()) // cursor reset
	require.Len(t, p.Path(), 3*3)                    // (d+1)·c with the new c
	require.Equal(t, []float64{1, 2, 3}, p.Path()[:3])
	require.Equal(t, []float64{0, 1, 2}, p.ObservationTimes())
}

func TestSetVectors(t *testing.T) {
	p := independent2D(t, &seqGen{})
	v := p.Version()

	require.NoError(t, p.SetVectors([]float64{5, 6}, []float64{1, 1}, []float64{2, 3}))
	require.Greater(t, p.Version(), v)
	require.Equal(t, []float64{5, 6}, p.Path()[:2])
	require.Equal(t, [][]float64{{4, 0}, {0, 9}}, p.Covariance())
	require.Equal(t, identity(2), p.Correlation()) // unchanged

	err := p.SetVectors([]float64{1}, []float64{1, 1}, []float64{1, 1})
	require.ErrorIs(t, err, brownian.ErrDimensionMismatch)
}

func TestMu_IsShared(t *testing.T) {
	p := independent2D(t, &seqGen{vals: []float64{0}})
	p.Mu()[0] = 3 // visible to the generator

	path, err := p.GeneratePath()
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 3, 0, 6, 0}, path)
}

func TestAccessorsReturnCopies(t *testing.T) {
	p := independent2D(t, &seqGen{})
	p.X0()[0] = 100
	p.Sigma()[0] = 100
	p.Correlation()[0][0] = 100
	p.Covariance()[0][0] = 100

	require.Equal(t, []float64{0, 0}, p.X0())
	require.Equal(t, []float64{1, 1}, p.Sigma())
	require.Equal(t, identity(2), p.Correlation())
	require.Equal(t, identity(2), p.Covariance())
}
