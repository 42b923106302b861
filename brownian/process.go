// SPDX-License-Identifier: MIT
// Package: brownian
//
// process.go - the Process type, constructors and variate-source accessors.

package brownian

import (
	"log/slog"

	"github.com/hadjar2027/ssj/matrix"
	"github.com/hadjar2027/ssj/randvar"
)

// Process is a correlated multivariate Brownian motion with its path buffer.
//
// Derived state:
//   - cov is rebuilt on every parameter update; version is bumped with it.
//   - factor.l is valid only while factor.version == version.
//   - dt/sqrdt and path are rebuilt whenever the grid or the parameters change.
type Process struct {
	// parameters
	c     int
	x0    []float64
	mu    []float64
	sigma []float64
	corr  [][]float64

	cov     *matrix.Dense
	version uint64
	factor  factorCache

	gen randvar.NormalGen

	// time grid and path
	timesSet  bool
	t         []float64 // len d+1
	dt        []float64 // len d
	sqrdt     []float64 // len d
	path      []float64 // len (d+1)*c, row-major by step then coordinate
	cursor    int       // index of the most recently generated step, 0..d
	freeSteps int       // steps taken by NextObservationFrom

	// scratch, len c
	shock []float64
	lz    []float64
	// scratch, len d*c
	block []float64

	shockMode    ShockMode
	copyOnReturn bool
	logger       *slog.Logger
}

// New builds a process drawing its shocks from gen.
// Dimensions are validated as in SetParams; observation times given by
// options are established afterwards.
//
// Errors: ErrNilGenerator, ErrInvalidDimension, *DimensionMismatchError, ErrNonFinite.
func New(c int, x0, mu, sigma []float64, corr [][]float64, gen randvar.NormalGen, opts ...Option) (*Process, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	cfg := newProcessConfig(opts...)

	p := &Process{
		gen:          gen,
		shockMode:    cfg.shockMode,
		copyOnReturn: cfg.copyOnReturn,
		logger:       cfg.logger,
	}
	if err := p.SetParams(c, x0, mu, sigma, corr); err != nil {
		return nil, err
	}
	if cfg.times != nil {
		if err := p.SetObservationTimes(cfg.times); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// NewWithStream builds a process whose normals are obtained by inversion
// from the uniform stream s.
//
// Errors: ErrNilStream plus those of New.
func NewWithStream(c int, x0, mu, sigma []float64, corr [][]float64, s randvar.Stream, opts ...Option) (*Process, error) {
	if randvar.IsNil(s) {
		return nil, ErrNilStream
	}

	return New(c, x0, mu, sigma, corr, randvar.NewInversionGen(s), opts...)
}

// SetStream rebinds the stream of the normal generator.
func (p *Process) SetStream(s randvar.Stream) error {
	if randvar.IsNil(s) {
		return ErrNilStream
	}

	return p.gen.SetStream(s)
}

// Stream returns the stream currently bound to the normal generator.
func (p *Process) Stream() randvar.Stream { return p.gen.Stream() }

// Generator returns the normal generator.
func (p *Process) Generator() randvar.NormalGen { return p.gen }

// ShockMode returns the sequential shock mode.
func (p *Process) ShockMode() ShockMode { return p.shockMode }
