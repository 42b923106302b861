// SPDX-License-Identifier: MIT
package simulate

import (
	"fmt"

	"github.com/hadjar2027/ssj/matrix"
)

// Summary describes the terminal increments X(T) − X(0) of a run.
// For a process with constant drift and a fixed grid the increments have mean
// mu·(T−t0), covariance Σ·(T−t0) and correlation R, which makes the summary a
// cheap sanity check.
type Summary struct {
	Paths       int         `json:"paths"`
	Dimension   int         `json:"dimension"`
	Mode        string      `json:"mode"`
	Fingerprint string      `json:"fingerprint"`
	Mean        []float64   `json:"mean"`
	StdDev      []float64   `json:"stddev,omitempty"`
	Covariance  [][]float64 `json:"covariance,omitempty"`
	Correlation [][]float64 `json:"correlation,omitempty"`
}

// incrementAccumulator collects one terminal increment row per path.
type incrementAccumulator struct {
	c    int
	rows [][]float64
}

func newIncrementAccumulator(c, capacity int) *incrementAccumulator {
	return &incrementAccumulator{c: c, rows: make([][]float64, 0, capacity)}
}

// add records path[last row] − path[row 0].
func (a *incrementAccumulator) add(path []float64) {
	c := a.c
	last := len(path) - c
	row := make([]float64, c)
	for i := 0; i < c; i++ {
		row[i] = path[last+i] - path[i]
	}
	a.rows = append(a.rows, row)
}

// summarize fills Mean always, StdDev, Covariance and Correlation when at least two paths exist.
func (a *incrementAccumulator) summarize(s *Summary) error {
	s.Paths = len(a.rows)
	s.Dimension = a.c
	s.Mean = make([]float64, a.c)
	if len(a.rows) == 0 {
		return nil
	}
	if len(a.rows) == 1 {
		copy(s.Mean, a.rows[0])
		return nil
	}

	X, err := matrix.NewDenseFromRows(a.rows, len(a.rows), a.c)
	if err != nil {
		return fmt.Errorf("simulate: summary: %w", err)
	}
	cov, _, err := matrix.Covariance(X)
	if err != nil {
		return fmt.Errorf("simulate: summary: %w", err)
	}
	corr, means, stds, err := matrix.Correlation(X)
	if err != nil {
		return fmt.Errorf("simulate: summary: %w", err)
	}
	s.Mean = means
	s.StdDev = stds
	if s.Covariance, err = rowsOf(cov); err != nil {
		return err
	}
	if s.Correlation, err = rowsOf(corr); err != nil {
		return err
	}

	return nil
}

// rowsOf copies m into a fresh [][]float64.
func rowsOf(m matrix.Matrix) ([][]float64, error) {
	out := make([][]float64, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("simulate: summary: %w", err)
			}
		}
	}

	return out, nil
}
