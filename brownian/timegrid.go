// SPDX-License-Identifier: MIT
// Package: brownian
//
// timegrid.go - observation times, per-step caches and path buffer scaffolding.
//
// Establishing a grid t[0..d]:
//   • allocates the path buffer of (d+1)·c values and writes x0 into row 0;
//   • resets the cursor and the free-step counter;
//   • computes dt[j] = t[j+1]-t[j] and sqrdt[j] = sqrt(dt[j]) for j < d.
// The same rebuild runs after every parameter update once a grid exists.

package brownian

import (
	"fmt"
	"log/slog"
	"math"
)

// SetObservationTimes establishes the grid t[0..d], d = len(t)-1. The slice is copied.
//
// Errors: *DimensionMismatchError when len(t) < 2; ErrNonFinite; ErrTimeNotIncreasing.
func (p *Process) SetObservationTimes(t []float64) error {
	if err := checkLen("t", len(t), 2); err != nil {
		return err
	}
	if err := validateTimes(t); err != nil {
		return err
	}
	p.t = make([]float64, len(t))
	copy(p.t, t)
	p.timesSet = true
	p.initGrid()

	return nil
}

// SetEvenObservationTimes establishes t[j] = t0 + j·delta for j = 0..d.
//
// Errors: ErrInvalidDimension when d < 1; ErrTimeNotIncreasing when delta <= 0;
// ErrNonFinite for non-finite t0 or delta.
func (p *Process) SetEvenObservationTimes(t0, delta float64, d int) error {
	if d < 1 {
		return fmt.Errorf("%w: steps %d", ErrInvalidDimension, d)
	}
	if math.IsNaN(t0) || math.IsInf(t0, 0) || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return ErrNonFinite
	}
	if delta <= 0 {
		return fmt.Errorf("%w: delta %g", ErrTimeNotIncreasing, delta)
	}
	p.t = evenTimes(t0, delta, d)
	p.timesSet = true
	p.initGrid()

	return nil
}

// initGrid rebuilds everything derived from (t, c, x0).
// Complexity: O(d·c).
func (p *Process) initGrid() {
	d := len(p.t) - 1
	p.dt = make([]float64, d)
	p.sqrdt = make([]float64, d)
	for j := 0; j < d; j++ {
		p.dt[j] = p.t[j+1] - p.t[j]
		p.sqrdt[j] = math.Sqrt(p.dt[j])
	}

	p.path = make([]float64, (d+1)*p.c)
	copy(p.path[:p.c], p.x0)
	p.block = make([]float64, d*p.c)
	p.cursor = 0
	p.freeSteps = 0

	p.logger.Debug("brownian observation times set",
		slog.Int("steps", d),
		slog.Int("dimension", p.c),
		slog.Float64("t0", p.t[0]),
		slog.Float64("tEnd", p.t[d]),
	)
}

func validateTimes(t []float64) error {
	for j, v := range t {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: t[%d] = %g", ErrNonFinite, j, v)
		}
		if j > 0 && v < t[j-1] {
			return fmt.Errorf("%w: t[%d] = %g < t[%d] = %g", ErrTimeNotIncreasing, j, v, j-1, t[j-1])
		}
	}

	return nil
}

func evenTimes(t0, delta float64, d int) []float64 {
	t := make([]float64, d+1)
	for j := range t {
		t[j] = t0 + float64(j)*delta
	}

	return t
}

// ObservationTimes returns a copy of t[0..d], or nil when no grid is set.
// Times patched by NextObservationAt are included.
func (p *Process) ObservationTimes() []float64 {
	if !p.timesSet {
		return nil
	}
	out := make([]float64, len(p.t))
	copy(out, p.t)

	return out
}

// NumObservationTimes returns d, the number of steps; 0 when no grid is set.
func (p *Process) NumObservationTimes() int {
	if !p.timesSet {
		return 0
	}

	return len(p.t) - 1
}

// Path returns the live path buffer ((d+1)·c values, row-major by step).
// The buffer is overwritten by later generation calls.
func (p *Process) Path() []float64 { return p.path }

// PathCopy returns a copy of the path buffer.
func (p *Process) PathCopy() []float64 {
	if p.path == nil {
		return nil
	}
	out := make([]float64, len(p.path))
	copy(out, p.path)

	return out
}

// Observation returns a copy of row j of the path, j in 0..d.
// Rows past the cursor hold whatever the last generation left there.
func (p *Process) Observation(j int) ([]float64, error) {
	if !p.timesSet {
		return nil, ErrTimesNotSet
	}
	if j < 0 || j > len(p.t)-1 {
		return nil, fmt.Errorf("%w: %d not in [0,%d]", ErrObservationIndex, j, len(p.t)-1)
	}

	return clonePrefix(p.path[j*p.c:], p.c), nil
}

// CurrentObservationIndex returns the cursor: the index of the most recently generated step.
func (p *Process) CurrentObservationIndex() int { return p.cursor }

// CurrentObservation returns a copy of the row at the cursor.
func (p *Process) CurrentObservation() ([]float64, error) { return p.Observation(p.cursor) }

// HasNextObservation reports whether a sequential step is still possible.
func (p *Process) HasNextObservation() bool {
	return p.timesSet && p.cursor < len(p.t)-1
}

// ResetStartProcess rewinds the cursor and the free-step counter.
// Row 0 of the path still holds x0.
func (p *Process) ResetStartProcess() {
	p.cursor = 0
	p.freeSteps = 0
}

// FreeSteps counts the steps taken by NextObservationFrom since the grid was
// established or the process was reset. It is independent of the cursor.
func (p *Process) FreeSteps() int { return p.freeSteps }
