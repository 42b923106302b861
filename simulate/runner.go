// SPDX-License-Identifier: MIT
package simulate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hadjar2027/ssj/brownian"
	"github.com/hadjar2027/ssj/config"
	"github.com/hadjar2027/ssj/randvar"
)

// Runner generates cfg.Paths independent paths of one process.
// Not safe for concurrent use.
type Runner struct {
	cfg         *config.Config
	proc        *brownian.Process
	stream      *randvar.PCGStream
	u01         []float64
	metrics     *Metrics
	logger      *slog.Logger
	fingerprint string
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithMetrics records every path and run into m.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// WithLogger sets the logger for the runner and its process. Panics on nil.
func WithLogger(l *slog.Logger) RunnerOption {
	if l == nil {
		panic("simulate: WithLogger(nil)")
	}

	return func(r *Runner) { r.logger = l }
}

// NewRunner validates cfg and builds the stream, generator and process it describes.
func NewRunner(cfg *config.Config, opts ...RunnerOption) (*Runner, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:    cfg,
		stream: randvar.NewPCGStream(cfg.Seed),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}

	var gen randvar.NormalGen
	if cfg.Mode == config.ModeBatch {
		gen = randvar.NewDirectGen(r.stream)
	} else {
		gen = randvar.NewInversionGen(r.stream)
	}
	proc, err := NewProcess(cfg, gen, r.logger)
	if err != nil {
		return nil, err
	}
	r.proc = proc
	if cfg.Mode == config.ModeInversion {
		r.u01 = make([]float64, proc.NumObservationTimes()*proc.Dimension())
	}
	r.fingerprint = config.FingerprintString(cfg)

	return r, nil
}

// Process returns the underlying process.
func (r *Runner) Process() *brownian.Process { return r.proc }

// Fingerprint returns the hex fingerprint of the configuration.
func (r *Runner) Fingerprint() string { return r.fingerprint }

// GeneratePath regenerates path i of the run alone. The returned slice is a copy.
func (r *Runner) GeneratePath(i int) ([]float64, error) {
	if i < 0 {
		return nil, fmt.Errorf("simulate: negative path index %d", i)
	}
	r.stream.ResetStartStream()
	for k := 0; k < i; k++ {
		r.stream.ResetNextSubstream()
	}
	path, err := r.generate()
	if err != nil {
		return nil, err
	}

	return append([]float64(nil), path...), nil
}

// generate builds one path from the current substream.
func (r *Runner) generate() ([]float64, error) {
	switch r.cfg.Mode {
	case config.ModeSequential:
		r.proc.ResetStartProcess()
		for r.proc.HasNextObservation() {
			if _, err := r.proc.NextObservation(); err != nil {
				return nil, err
			}
		}

		return r.proc.Path(), nil
	case config.ModeInversion:
		for i := range r.u01 {
			r.u01[i] = r.stream.Float64()
		}

		return r.proc.GeneratePathUniform(r.u01)
	default:
		return r.proc.GeneratePath()
	}
}

// Run generates every path, writes each to sink (nil discards) and returns
// the summary of terminal increments. Cancellation is checked between paths.
func (r *Runner) Run(ctx context.Context, sink Sink) (*Summary, error) {
	mode := r.cfg.Mode
	status := "error"
	defer func() { r.metrics.RecordRun(status) }()

	start := time.Now()
	r.logger.Info("Run started",
		slog.String("mode", mode),
		slog.Int("paths", r.cfg.Paths),
		slog.Int("dimension", r.proc.Dimension()),
		slog.Int("steps", r.proc.NumObservationTimes()),
		slog.String("fingerprint", r.fingerprint))

	times := r.proc.ObservationTimes()
	acc := newIncrementAccumulator(r.proc.Dimension(), r.cfg.Paths)
	r.stream.ResetStartStream()
	for i := 0; i < r.cfg.Paths; i++ {
		if err := ctx.Err(); err != nil {
			status = "canceled"
			return nil, err
		}
		if i > 0 {
			r.stream.ResetNextSubstream()
		}

		t0 := time.Now()
		path, err := r.generate()
		if err != nil {
			r.metrics.RecordError(mode, err)
			return nil, fmt.Errorf("simulate: path %d: %w", i, err)
		}
		r.metrics.RecordPath(mode, time.Since(t0).Seconds())
		acc.add(path)

		if sink == nil {
			continue
		}
		err = sink.WritePath(PathRecord{Index: i, Times: times, Dimension: r.proc.Dimension(), Values: path})
		if err != nil {
			r.metrics.RecordError(mode, err)
			return nil, fmt.Errorf("simulate: path %d: %w", i, err)
		}
	}
	if sink != nil {
		if err := sink.Flush(); err != nil {
			return nil, err
		}
	}

	sum := &Summary{Mode: mode, Fingerprint: r.fingerprint}
	if err := acc.summarize(sum); err != nil {
		return nil, err
	}
	status = "ok"
	r.logger.Info("Run finished", slog.Int("paths", sum.Paths), slog.Duration("elapsed", time.Since(start)))

	return sum, nil
}
