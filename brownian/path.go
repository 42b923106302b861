// SPDX-License-Identifier: MIT
// Package: brownian
//
// path.go - sequential and batch path generation.
//
// One step from state x over an interval dt with shock vector Z:
//
//	x'[i] = x[i] + mu[i]·dt + sqrt(dt)·(L·Z)[i]
//
// Contract:
//   • The factor is obtained before anything else; on failure the call returns
//     ErrDecomposition with the buffer, cursor and stream untouched.
//   • Sequential methods draw from the bound NormalGen in a fixed order
//     (step, then coordinate) so a seeded stream reproduces the path.
//   • Batch methods always share one shock vector per step across coordinates.
//
// AI-Hints:
//   • For QMC or common random numbers, pre-generate the block and call
//     GeneratePathFrom / GeneratePathUniform; the path is then a pure function of it.
//   • Keep WithCopyOnReturn off in hot loops and copy only what you keep.

package brownian

import (
	"fmt"
	"math"

	"github.com/hadjar2027/ssj/matrix"
	"github.com/hadjar2027/ssj/randvar"
)

// correlatedShock fills p.lz with L·Z for one step according to the shock mode.
//
// Implementation:
//   - SharedShock: draw Z (c normals) once, p.lz = L·Z via matrix.MatVecInto.
//   - PerCoordinateShock: for each i draw c fresh normals g and set
//     p.lz[i] = Σ_k L[i][k]·g[k] (c² draws, upper-triangle zeros included so
//     the stream is consumed exactly as the legacy generator did).
//
// Complexity: O(c²) time, no allocation.
func (p *Process) correlatedShock(l *matrix.Dense) error {
	if p.shockMode == PerCoordinateShock {
		var row []float64
		var z float64
		var err error
		for i := 0; i < p.c; i++ {
			if row, err = l.RowView(i); err != nil {
				return err
			}
			if err = p.drawShocks(p.shock); err != nil {
				return err
			}
			z = 0
			for k := 0; k < p.c; k++ {
				z += row[k] * p.shock[k]
			}
			p.lz[i] = z
		}

		return nil
	}

	if err := p.drawShocks(p.shock); err != nil {
		return err
	}

	return matrix.MatVecInto(p.lz, l, p.shock)
}

// drawShocks fills dst from the generator in order. A non-finite variate
// (e.g. a replayed uniform of exactly 0 or 1 under inversion) stops the draw
// with ErrNonFinite before it can reach L·Z, where 0·Inf would turn into NaN.
func (p *Process) drawShocks(dst []float64) error {
	var z float64
	for i := range dst {
		z = p.gen.NextNormal()
		if math.IsNaN(z) || math.IsInf(z, 0) {
			return fmt.Errorf("%w: shock %d = %g", ErrNonFinite, i, z)
		}
		dst[i] = z
	}

	return nil
}

// advance writes dst[i] = x[i] + mu[i]·dt + sq·lz[i] for i < c.
func (p *Process) advance(dst, x []float64, dt, sq float64) {
	for i := 0; i < p.c; i++ {
		dst[i] = x[i] + p.mu[i]*dt + sq*p.lz[i]
	}
}

// checkSequential guards the cursor-based methods.
func (p *Process) checkSequential(out []float64) error {
	if !p.timesSet {
		return ErrTimesNotSet
	}
	if p.cursor >= len(p.t)-1 {
		return fmt.Errorf("%w: cursor at %d", ErrPathExhausted, p.cursor)
	}

	return checkLen("out", len(out), p.c)
}

// NextObservationInto advances the path by one step on the grid.
// With j the cursor, row j+1 of the path and out[0..c) receive
// x[j] + mu·dt[j] + sqrdt[j]·L·Z, then the cursor moves to j+1.
//
// Errors: ErrTimesNotSet, ErrPathExhausted, *DimensionMismatchError ("out"),
// ErrDecomposition, ErrNonFinite (non-finite variate; cursor unchanged).
// Complexity: O(c²).
func (p *Process) NextObservationInto(out []float64) error {
	if err := p.checkSequential(out); err != nil {
		return err
	}
	l, err := p.cholesky()
	if err != nil {
		return err
	}
	if err = p.correlatedShock(l); err != nil {
		return err
	}

	j, c := p.cursor, p.c
	next := p.path[(j+1)*c : (j+2)*c]
	p.advance(next, p.path[j*c:(j+1)*c], p.dt[j], p.sqrdt[j])
	copy(out, next)
	p.cursor++

	return nil
}

// NextObservation is NextObservationInto with a freshly allocated vector.
func (p *Process) NextObservation() ([]float64, error) {
	out := make([]float64, p.c)
	if err := p.NextObservationInto(out); err != nil {
		return nil, err
	}

	return out, nil
}

// NextObservationAt advances the path by one step to an explicit time.
// t[j+1] is overwritten with nextTime and the step uses dt = nextTime − t[j]
// and sqrt(dt) directly; the cached dt/sqrdt are left as they were.
// A nil out is allocated. Returns out.
//
// Errors: as NextObservationInto, plus ErrNonFinite and ErrTimeNotIncreasing
// when nextTime < t[j].
func (p *Process) NextObservationAt(nextTime float64, out []float64) ([]float64, error) {
	if out == nil {
		out = make([]float64, p.c)
	}
	if err := p.checkSequential(out); err != nil {
		return nil, err
	}
	if math.IsNaN(nextTime) || math.IsInf(nextTime, 0) {
		return nil, fmt.Errorf("%w: nextTime %g", ErrNonFinite, nextTime)
	}
	j, c := p.cursor, p.c
	if nextTime < p.t[j] {
		return nil, fmt.Errorf("%w: nextTime %g < t[%d] = %g", ErrTimeNotIncreasing, nextTime, j, p.t[j])
	}
	l, err := p.cholesky()
	if err != nil {
		return nil, err
	}
	if err = p.correlatedShock(l); err != nil {
		return nil, err
	}

	p.t[j+1] = nextTime
	dt := nextTime - p.t[j]
	next := p.path[(j+1)*c : (j+2)*c]
	p.advance(next, p.path[j*c:(j+1)*c], dt, math.Sqrt(dt))
	copy(out, next)
	p.cursor++

	return out, nil
}

// NextObservationFrom takes one step of length deltaT from an arbitrary state x
// and returns the result as a new vector. The path buffer and the cursor are
// not touched; FreeSteps is incremented instead. No time grid is required.
//
// Errors: *DimensionMismatchError ("x"), ErrNonFinite, ErrTimeNotIncreasing
// (deltaT < 0), ErrDecomposition.
func (p *Process) NextObservationFrom(x []float64, deltaT float64) ([]float64, error) {
	if err := checkLen("x", len(x), p.c); err != nil {
		return nil, err
	}
	if math.IsNaN(deltaT) || math.IsInf(deltaT, 0) {
		return nil, fmt.Errorf("%w: deltaT %g", ErrNonFinite, deltaT)
	}
	if deltaT < 0 {
		return nil, fmt.Errorf("%w: deltaT %g", ErrTimeNotIncreasing, deltaT)
	}
	l, err := p.cholesky()
	if err != nil {
		return nil, err
	}
	if err = p.correlatedShock(l); err != nil {
		return nil, err
	}

	out := make([]float64, p.c)
	p.advance(out, x, deltaT, math.Sqrt(deltaT))
	p.freeSteps++

	return out, nil
}

// GeneratePath draws d·c standard normals from the generator (step-major,
// then coordinate) and builds the whole path from them.
//
// Errors: ErrTimesNotSet, ErrDecomposition, ErrNonFinite (generator produced
// NaN/±Inf; the path buffer is left as it was).
func (p *Process) GeneratePath() ([]float64, error) {
	if !p.timesSet {
		return nil, ErrTimesNotSet
	}
	l, err := p.cholesky()
	if err != nil {
		return nil, err
	}
	if err = p.drawShocks(p.block); err != nil {
		return nil, err
	}

	return p.buildPath(l, p.block)
}

// GeneratePathFrom builds the whole path from a block of standard normal
// shocks: shocks[j·c+k] is component k of the shock vector of step j.
// The result depends on nothing but the parameters, the grid and the block;
// changing shocks[j·c+k] only changes rows j+1..d.
//
// Errors: ErrTimesNotSet, *DimensionMismatchError ("shocks", len < d·c),
// ErrDecomposition.
func (p *Process) GeneratePathFrom(shocks []float64) ([]float64, error) {
	if !p.timesSet {
		return nil, ErrTimesNotSet
	}
	if err := checkLen("shocks", len(shocks), len(p.block)); err != nil {
		return nil, err
	}
	l, err := p.cholesky()
	if err != nil {
		return nil, err
	}

	return p.buildPath(l, shocks)
}

// GeneratePathUniform builds the whole path from a block of uniforms on (0,1),
// e.g. one quasi-Monte-Carlo point of dimension d·c, mapping each through Φ⁻¹.
//
// Errors: ErrTimesNotSet, *DimensionMismatchError ("u01"), ErrInvalidUniform,
// ErrDecomposition.
func (p *Process) GeneratePathUniform(u01 []float64) ([]float64, error) {
	if !p.timesSet {
		return nil, ErrTimesNotSet
	}
	n := len(p.block)
	if err := checkLen("u01", len(u01), n); err != nil {
		return nil, err
	}
	for i, u := range u01[:n] {
		if !(u > 0 && u < 1) {
			return nil, fmt.Errorf("%w: u01[%d] = %g", ErrInvalidUniform, i, u)
		}
	}
	l, err := p.cholesky()
	if err != nil {
		return nil, err
	}
	for i, u := range u01[:n] {
		p.block[i] = randvar.InverseNormal(u)
	}

	return p.buildPath(l, p.block)
}

// GeneratePathWithStream rebinds the generator to s and calls GeneratePath.
func (p *Process) GeneratePathWithStream(s randvar.Stream) ([]float64, error) {
	if err := p.SetStream(s); err != nil {
		return nil, err
	}

	return p.GeneratePath()
}

// buildPath is the batch kernel.
//
// Implementation:
//   - Stage 1: row 0 ← x0.
//   - Stage 2: for j in 0..d-1: lz ← L·Z_j (shared by all coordinates),
//     row j+1 ← row j + mu·dt[j] + sqrdt[j]·lz.
//   - Stage 3: cursor ← d.
//
// Complexity: O(d·c²) time, no allocation unless copy-on-return is set.
func (p *Process) buildPath(l *matrix.Dense, shocks []float64) ([]float64, error) {
	c, d := p.c, len(p.t)-1
	copy(p.path[:c], p.x0)
	for j := 0; j < d; j++ {
		if err := matrix.MatVecInto(p.lz, l, shocks[j*c:(j+1)*c]); err != nil {
			return nil, err
		}
		p.advance(p.path[(j+1)*c:(j+2)*c], p.path[j*c:(j+1)*c], p.dt[j], p.sqrdt[j])
	}
	p.cursor = d

	if p.copyOnReturn {
		return p.PathCopy(), nil
	}

	return p.path, nil
}
