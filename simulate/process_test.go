// SPDX-License-Identifier: MIT
package simulate_test

import (
	"testing"

	"github.com/hadjar2027/ssj/brownian"
	"github.com/hadjar2027/ssj/config"
	"github.com/hadjar2027/ssj/randvar"
	"github.com/hadjar2027/ssj/simulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcess(t *testing.T) {
	gen := randvar.NewInversionGen(randvar.NewPCGStream(1))

	cfg := testConfig(config.ModeBatch, 1, 0.25)
	p, err := simulate.NewProcess(cfg, gen, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Dimension())
	assert.Equal(t, 4, p.NumObservationTimes())
	assert.Equal(t, brownian.SharedShock, p.ShockMode())
	assert.Equal(t, [][]float64{{1, 0.5}, {0.5, 4}}, p.Covariance())

	cfg.ShockMode = "per-coordinate"
	cfg.Process.Times.Points = []float64{0, 1, 3}
	p, err = simulate.NewProcess(cfg, gen, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 3}, p.ObservationTimes())
	assert.Equal(t, brownian.PerCoordinateShock, p.ShockMode())
}

func TestNewProcess_Errors(t *testing.T) {
	gen := randvar.NewInversionGen(randvar.NewPCGStream(1))

	cfg := testConfig(config.ModeBatch, 1, 0)
	cfg.ShockMode = "antithetic"
	_, err := simulate.NewProcess(cfg, gen, nil)
	require.ErrorIs(t, err, brownian.ErrUnknownShockMode)

	cfg = testConfig(config.ModeBatch, 1, 0)
	cfg.Process.Times = config.Times{}
	_, err = simulate.NewProcess(cfg, gen, nil)
	require.ErrorIs(t, err, brownian.ErrTimesNotSet)

	cfg = testConfig(config.ModeBatch, 1, 0)
	cfg.Process.Mu = []float64{0}
	_, err = simulate.NewProcess(cfg, gen, nil)
	require.ErrorIs(t, err, brownian.ErrDimensionMismatch)
}

func TestNewProcess_BadPointsDoNotPanic(t *testing.T) {
	cfg := testConfig(config.ModeBatch, 1, 0)
	cfg.Process.Times.Points = []float64{0, 2, 1}
	_, err := simulate.NewProcess(cfg, randvar.NewInversionGen(randvar.NewPCGStream(1)), nil)
	require.ErrorIs(t, err, brownian.ErrTimeNotIncreasing)
}

func TestNewProcess_IdentityCorrelation(t *testing.T) {
	cfg := testConfig(config.ModeBatch, 1, 0)
	cfg.Process.Correlation = nil
	p, err := simulate.NewProcess(cfg, randvar.NewInversionGen(randvar.NewPCGStream(1)), nil)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, p.Correlation())
	assert.Equal(t, [][]float64{{1, 0}, {0, 4}}, p.Covariance())
}
