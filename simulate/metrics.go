// SPDX-License-Identifier: MIT
package simulate

import (
	"errors"

	"github.com/hadjar2027/ssj/brownian"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "mbm"
	metricsSubsystem = "simulate"
)

// Metrics holds the prometheus collectors of a run. A nil *Metrics records nothing.
type Metrics struct {
	// PathsTotal counts generated paths. Labels: mode.
	PathsTotal *prometheus.CounterVec

	// ErrorsTotal counts failed paths. Labels: mode, kind.
	ErrorsTotal *prometheus.CounterVec

	// PathDurationSeconds measures the time to generate one path. Labels: mode.
	PathDurationSeconds *prometheus.HistogramVec

	// RunsTotal counts finished runs. Labels: status (ok, error, canceled).
	RunsTotal *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on promhttp.Handler().
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		PathsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "paths_total",
			Help:      "Total generated paths by mode",
		}, []string{"mode"}),
		ErrorsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "errors_total",
			Help:      "Total path generation errors by mode and kind",
		}, []string{"mode", "kind"}),
		PathDurationSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "path_duration_seconds",
			Help:      "Path generation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 12), // 1µs to ~4s
		}, []string{"mode"}),
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "runs_total",
			Help:      "Total runs by final status",
		}, []string{"status"}),
	}
}

// RecordPath counts one path and observes its duration.
func (m *Metrics) RecordPath(mode string, seconds float64) {
	if m == nil {
		return
	}
	m.PathsTotal.WithLabelValues(mode).Inc()
	m.PathDurationSeconds.WithLabelValues(mode).Observe(seconds)
}

// RecordError counts one failed path under the kind of err.
func (m *Metrics) RecordError(mode string, err error) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(mode, errorKind(err)).Inc()
}

// RecordRun counts one finished run.
func (m *Metrics) RecordRun(status string) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(status).Inc()
}

// errorKind maps err to a low-cardinality label value.
func errorKind(err error) string {
	switch {
	case errors.Is(err, brownian.ErrDecomposition):
		return "decomposition"
	case errors.Is(err, brownian.ErrDimensionMismatch):
		return "dimension"
	case errors.Is(err, brownian.ErrTimesNotSet), errors.Is(err, brownian.ErrPathExhausted):
		return "grid"
	case errors.Is(err, brownian.ErrInvalidUniform), errors.Is(err, brownian.ErrNonFinite):
		return "input"
	case errors.Is(err, ErrSink):
		return "sink"
	default:
		return "other"
	}
}
