// SPDX-License-Identifier: MIT
// Package: brownian
//
// options.go - functional options for New/NewWithStream.
//
// Contract (strict):
//   • Options are functional (type Option func(*processConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Runtime methods never panic; they return errors.
//   • No hidden globals; everything flows through processConfig.

package brownian

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// ShockMode selects how sequential steps draw their normal shocks.
type ShockMode uint8

const (
	// SharedShock draws one vector Z of c normals per step and applies L·Z to
	// every coordinate. Increments have covariance Σ·dt.
	SharedShock ShockMode = iota

	// PerCoordinateShock draws a fresh vector of c normals for every
	// coordinate (c² draws per step). Kept for replaying legacy streams;
	// coordinates come out uncorrelated regardless of R.
	PerCoordinateShock
)

// String returns the configuration name of the mode.
func (m ShockMode) String() string {
	switch m {
	case SharedShock:
		return "shared"
	case PerCoordinateShock:
		return "per-coordinate"
	default:
		return fmt.Sprintf("ShockMode(%d)", uint8(m))
	}
}

// ParseShockMode maps "shared" / "per-coordinate" (case-insensitive) to a ShockMode.
// The empty string selects SharedShock.
func ParseShockMode(s string) (ShockMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "shared":
		return SharedShock, nil
	case "per-coordinate", "percoordinate":
		return PerCoordinateShock, nil
	default:
		return SharedShock, fmt.Errorf("%w: %q", ErrUnknownShockMode, s)
	}
}

// Option customizes a Process at construction.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*processConfig)

// processConfig is resolved from options before parameters are validated.
type processConfig struct {
	times        []float64
	shockMode    ShockMode
	copyOnReturn bool
	logger       *slog.Logger
}

// newProcessConfig applies opts over the defaults.
func newProcessConfig(opts ...Option) processConfig {
	cfg := processConfig{
		shockMode: SharedShock,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithObservationTimes establishes the time grid t[0..d] at construction.
// Panics if len(t) < 2 or t is decreasing or non-finite.
func WithObservationTimes(t []float64) Option {
	if len(t) < 2 {
		panic("brownian: WithObservationTimes(len(t)<2)")
	}
	if err := validateTimes(t); err != nil {
		panic("brownian: WithObservationTimes: " + err.Error())
	}
	cp := make([]float64, len(t))
	copy(cp, t)

	return func(c *processConfig) {
		c.times = cp
	}
}

// WithEvenObservationTimes establishes the grid t[j] = t0 + j·delta, j = 0..d.
// Panics if delta <= 0, d < 1 or t0 is not finite.
func WithEvenObservationTimes(t0, delta float64, d int) Option {
	if !(delta > 0) || math.IsInf(delta, 0) {
		panic("brownian: WithEvenObservationTimes(delta<=0)")
	}
	if d < 1 {
		panic("brownian: WithEvenObservationTimes(d<1)")
	}
	if math.IsNaN(t0) || math.IsInf(t0, 0) {
		panic("brownian: WithEvenObservationTimes(t0 not finite)")
	}
	t := evenTimes(t0, delta, d)

	return func(c *processConfig) {
		c.times = t
	}
}

// WithShockMode selects the sequential shock mode. Panics on an unknown mode.
func WithShockMode(m ShockMode) Option {
	if m != SharedShock && m != PerCoordinateShock {
		panic("brownian: WithShockMode(unknown)")
	}

	return func(c *processConfig) {
		c.shockMode = m
	}
}

// WithCopyOnReturn makes batch methods return a fresh copy of the path
// instead of the live internal buffer.
func WithCopyOnReturn() Option {
	return func(c *processConfig) {
		c.copyOnReturn = true
	}
}

// WithLogger attaches a logger for Debug records on parameter updates,
// grid rebuilds and factorizations. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("brownian: WithLogger(nil)")
	}

	return func(c *processConfig) {
		c.logger = l
	}
}
