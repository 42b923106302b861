// SPDX-License-Identifier: MIT
// Package brownian: sentinel error set.
// Every message is prefixed with "brownian: ..."; callers match with errors.Is.
// Nothing in this package recovers from an error internally.

package brownian

import (
	"errors"
	"fmt"

	"github.com/hadjar2027/ssj/randvar"
)

var (
	// ErrDimensionMismatch is carried by *DimensionMismatchError when an input
	// is shorter than the process dimension.
	ErrDimensionMismatch = errors.New("brownian: dimension mismatch")

	// ErrInvalidDimension indicates a process dimension c < 1.
	ErrInvalidDimension = errors.New("brownian: dimension must be >= 1")

	// ErrDecomposition indicates the covariance matrix could not be factored.
	// The underlying matrix error (e.g. matrix.ErrNotPositiveSemiDefinite) stays matchable.
	ErrDecomposition = errors.New("brownian: covariance decomposition failed")

	// ErrNonFinite indicates a NaN or ±Inf parameter.
	ErrNonFinite = errors.New("brownian: parameter is NaN or Inf")

	// ErrTimesNotSet indicates a path operation before observation times were established.
	ErrTimesNotSet = errors.New("brownian: observation times not set")

	// ErrTimeNotIncreasing indicates a decreasing time grid, a next time before
	// the current one, or a negative step.
	ErrTimeNotIncreasing = errors.New("brownian: observation times must be non-decreasing")

	// ErrPathExhausted indicates a sequential step past the last observation time.
	ErrPathExhausted = errors.New("brownian: no observation left on the time grid")

	// ErrObservationIndex indicates an observation index outside 0..d.
	ErrObservationIndex = errors.New("brownian: observation index out of range")

	// ErrInvalidUniform indicates a uniform variate outside the open interval (0,1).
	ErrInvalidUniform = errors.New("brownian: uniform variate outside (0,1)")

	// ErrNilGenerator indicates a nil normal generator.
	ErrNilGenerator = errors.New("brownian: nil normal generator")

	// ErrUnknownShockMode indicates an unrecognized shock mode name.
	ErrUnknownShockMode = errors.New("brownian: unknown shock mode")

	// ErrNilStream indicates a nil uniform stream. Same value as randvar.ErrNilStream.
	ErrNilStream = randvar.ErrNilStream
)

// DimensionMismatchError names the offending argument with the expected and actual sizes.
// errors.Is(err, ErrDimensionMismatch) holds for every instance.
type DimensionMismatchError struct {
	Arg      string // argument name, e.g. "x0", "corr", "corr[1]", "shocks"
	Expected int    // minimum required length
	Actual   int    // supplied length
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("brownian: %s dimension %d is smaller than the required %d", e.Arg, e.Actual, e.Expected)
}

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// checkLen returns a *DimensionMismatchError when actual < expected.
func checkLen(arg string, actual, expected int) error {
	if actual < expected {
		return &DimensionMismatchError{Arg: arg, Expected: expected, Actual: actual}
	}

	return nil
}
