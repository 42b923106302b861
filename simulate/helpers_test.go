// SPDX-License-Identifier: MIT
package simulate_test

import (
	"testing"

	"github.com/hadjar2027/ssj/config"
	"github.com/hadjar2027/ssj/simulate"
	"github.com/stretchr/testify/require"
)

// testConfig is a valid two-dimensional configuration with correlation rho.
func testConfig(mode string, paths int, rho float64) *config.Config {
	cfg := config.Default()
	cfg.Seed = 2024
	cfg.Paths = paths
	cfg.Mode = mode
	cfg.Process = config.Process{
		Dimension:   2,
		X0:          []float64{1, -1},
		Mu:          []float64{0.5, 0},
		Sigma:       []float64{1, 2},
		Correlation: [][]float64{{1, rho}, {rho, 1}},
		Times:       config.Times{T0: 0, Delta: 0.25, Steps: 4},
	}

	return cfg
}

// recordingSink keeps a copy of every record.
type recordingSink struct {
	records []simulate.PathRecord
	flushed int
	failAt  int
}

func (s *recordingSink) WritePath(rec simulate.PathRecord) error {
	if s.failAt > 0 && rec.Index+1 == s.failAt {
		return simulate.ErrSink
	}
	rec.Times = append([]float64(nil), rec.Times...)
	rec.Values = append([]float64(nil), rec.Values...)
	s.records = append(s.records, rec)
	return nil
}

func (s *recordingSink) Flush() error {
	s.flushed++
	return nil
}

func newRunner(t *testing.T, cfg *config.Config, opts ...simulate.RunnerOption) *simulate.Runner {
	t.Helper()
	r, err := simulate.NewRunner(cfg, opts...)
	require.NoError(t, err)
	return r
}
