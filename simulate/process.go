// SPDX-License-Identifier: MIT
package simulate

import (
	"fmt"
	"log/slog"

	"github.com/hadjar2027/ssj/brownian"
	"github.com/hadjar2027/ssj/config"
	"github.com/hadjar2027/ssj/matrix"
	"github.com/hadjar2027/ssj/randvar"
)

// NewProcess builds a brownian.Process from the process block of cfg.
// Explicit time points win over the even grid; a missing correlation matrix
// is the identity. Bad input is returned as an error, never a panic.
func NewProcess(cfg *config.Config, gen randvar.NormalGen, logger *slog.Logger) (*brownian.Process, error) {
	mode, err := brownian.ParseShockMode(cfg.ShockMode)
	if err != nil {
		return nil, err
	}

	opts := []brownian.Option{brownian.WithShockMode(mode)}
	if logger != nil {
		opts = append(opts, brownian.WithLogger(logger))
	}
	p := cfg.Process
	corr := p.Correlation
	if len(corr) == 0 {
		id, err := matrix.NewIdentity(p.Dimension)
		if err != nil {
			return nil, fmt.Errorf("simulate: %w: %w", brownian.ErrInvalidDimension, err)
		}
		corr = id.ToRows()
	}
	proc, err := brownian.New(p.Dimension, p.X0, p.Mu, p.Sigma, corr, gen, opts...)
	if err != nil {
		return nil, err
	}

	switch {
	case len(p.Times.Points) > 0:
		err = proc.SetObservationTimes(p.Times.Points)
	case p.Times.Delta > 0 && p.Times.Steps > 0:
		err = proc.SetEvenObservationTimes(p.Times.T0, p.Times.Delta, p.Times.Steps)
	default:
		err = brownian.ErrTimesNotSet
	}
	if err != nil {
		return nil, fmt.Errorf("simulate: times: %w", err)
	}

	return proc, nil
}
