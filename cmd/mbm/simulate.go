// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/hadjar2027/ssj/config"
	"github.com/hadjar2027/ssj/simulate"
)

type simulateFlags struct {
	paths       int
	seed        uint64
	mode        string
	shockMode   string
	format      string
	output      string
	metricsAddr string
	summary     bool
}

func newSimulateCmd() *cobra.Command {
	flags := &simulateFlags{}
	cmd := &cobra.Command{
		Use:   "simulate <config.yaml>...",
		Short: "Generate paths",
		Long:  `Generate paths from the provided configuration files. Flags override the merged configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("no config files provided")
			}
			cfg, err := loadWithOverrides(cmd, args, flags)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return runSimulate(ctx, cmd, cfg, flags)
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.paths, "paths", 0, "number of paths (overrides config)")
	f.Uint64Var(&flags.seed, "seed", 0, "stream seed (overrides config)")
	f.StringVar(&flags.mode, "mode", "", "generation mode: batch, sequential or inversion (overrides config)")
	f.StringVar(&flags.shockMode, "shock-mode", "", "sequential shock mode: shared or per-coordinate (overrides config)")
	f.StringVar(&flags.format, "format", "", "output format: csv or jsonl (overrides config)")
	f.StringVarP(&flags.output, "output", "o", "", "output file, standard output when empty (overrides config)")
	f.StringVar(&flags.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address during the run")
	f.BoolVar(&flags.summary, "summary", false, "print the terminal increment summary as JSON to standard error")

	return cmd
}

// loadWithOverrides merges args and applies every flag the user set.
func loadWithOverrides(cmd *cobra.Command, args []string, flags *simulateFlags) (*config.Config, error) {
	cfg, err := config.LoadConfigs(args)
	if err != nil {
		return nil, fmt.Errorf("error loading config files: %w", err)
	}

	f := cmd.Flags()
	if f.Changed("paths") {
		cfg.Paths = flags.paths
	}
	if f.Changed("seed") {
		cfg.Seed = flags.seed
	}
	if f.Changed("mode") {
		cfg.Mode = flags.mode
	}
	if f.Changed("shock-mode") {
		cfg.ShockMode = flags.shockMode
	}
	if f.Changed("format") {
		cfg.Output.Format = flags.format
	}
	if f.Changed("output") {
		cfg.Output.Path = flags.output
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runSimulate(ctx context.Context, cmd *cobra.Command, cfg *config.Config, flags *simulateFlags) error {
	logger := slog.Default()
	opts := []simulate.RunnerOption{simulate.WithLogger(logger)}

	if flags.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts = append(opts, simulate.WithMetrics(simulate.NewMetrics(reg)))

		shutdown, err := serveMetrics(flags.metricsAddr, reg, logger)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	runner, err := simulate.NewRunner(cfg, opts...)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if cfg.Output.Path != "" {
		file, err := os.Create(cfg.Output.Path)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	sink, err := simulate.NewSink(cfg.Output.Format, out, runner.Fingerprint())
	if err != nil {
		return err
	}

	sum, err := runner.Run(ctx, sink)
	if err != nil {
		return err
	}
	if flags.summary {
		enc := json.NewEncoder(cmd.ErrOrStderr())
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}

	return nil
}

// serveMetrics exposes reg on addr/metrics until the returned function is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", slog.Any("error", err))
		}
	}()
	logger.Info("Serving metrics", slog.String("addr", ln.Addr().String()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
