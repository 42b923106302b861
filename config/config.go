// SPDX-License-Identifier: MIT
// Package config loads and validates simulation configurations.
//
// Files are YAML. Each file is read into a generic map and decoded with
// mapstructure in strict mode (unknown keys are errors), then files are merged
// in order: later non-zero scalars win, a later process block replaces the
// earlier one as a whole. The merged result is checked with struct tags
// through a shared go-playground validator.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Generation modes understood by the simulate package.
const (
	ModeBatch      = "batch"
	ModeSequential = "sequential"
	ModeInversion  = "inversion"
)

// Output formats understood by the simulate package.
const (
	FormatCSV   = "csv"
	FormatJSONL = "jsonl"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is a complete simulation run.
type Config struct {
	Seed      uint64  `mapstructure:"seed" yaml:"seed" json:"seed"`
	Paths     int     `mapstructure:"paths" yaml:"paths" json:"paths" validate:"gte=1"`
	Mode      string  `mapstructure:"mode" yaml:"mode" json:"mode" validate:"oneof=batch sequential inversion"`
	ShockMode string  `mapstructure:"shockMode" yaml:"shockMode" json:"shockMode" validate:"oneof=shared per-coordinate"`
	Output    Output  `mapstructure:"output" yaml:"output" json:"output"`
	Process   Process `mapstructure:"process" yaml:"process" json:"process"`
}

// Output selects where and how paths are written.
// An empty Path means standard output.
type Output struct {
	Format string `mapstructure:"format" yaml:"format" json:"format" validate:"oneof=csv jsonl"`
	Path   string `mapstructure:"path" yaml:"path" json:"path"`
}

// Process holds the Brownian motion parameters.
// An omitted correlation matrix means independent coordinates (R = I).
type Process struct {
	Dimension   int         `mapstructure:"dimension" yaml:"dimension" json:"dimension" validate:"gte=1"`
	X0          []float64   `mapstructure:"x0" yaml:"x0" json:"x0" validate:"required"`
	Mu          []float64   `mapstructure:"mu" yaml:"mu" json:"mu" validate:"required"`
	Sigma       []float64   `mapstructure:"sigma" yaml:"sigma" json:"sigma" validate:"required,dive,gte=0"`
	Correlation [][]float64 `mapstructure:"correlation" yaml:"correlation" json:"correlation" validate:"omitempty,dive,required,dive,gte=-1,lte=1"`
	Times       Times       `mapstructure:"times" yaml:"times" json:"times"`
}

// Times is either an explicit list of points or an even grid
// t0, t0+delta, ..., t0+steps·delta. Points win when both are given.
type Times struct {
	T0     float64   `mapstructure:"t0" yaml:"t0" json:"t0"`
	Delta  float64   `mapstructure:"delta" yaml:"delta" json:"delta" validate:"gte=0"`
	Steps  int       `mapstructure:"steps" yaml:"steps" json:"steps" validate:"gte=0"`
	Points []float64 `mapstructure:"points" yaml:"points,omitempty" json:"points,omitempty" validate:"omitempty,min=2"`
}

// Default returns the values every merge starts from.
func Default() *Config {
	return &Config{
		Paths:     1,
		Mode:      ModeBatch,
		ShockMode: "shared",
		Output:    Output{Format: FormatCSV},
	}
}

// NewMapstructureDecoder returns a strict decoder into target:
// unknown keys fail the decode instead of being dropped.
func NewMapstructureDecoder(target any) (*mapstructure.Decoder, error) {
	return mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      target,
		ErrorUnused: true,
		TagName:     "mapstructure",
	})
}

// Parse decodes one YAML document onto a copy of the defaults.
func Parse(b []byte) (*Config, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("config: yaml: %w", err)
	}
	cfg := Config{}
	decoder, err := NewMapstructureDecoder(&cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if len(cfg.Process.Times.Points) == 0 {
		cfg.Process.Times.Points = nil // "points: []" means no explicit grid
	}

	return &cfg, nil
}

// LoadYAML reads and parses one file without merging or validation.
func LoadYAML(fname string) (*Config, error) {
	b, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	return cfg, nil
}

// LoadConfigs loads fnames in order, merges them over Default and validates the result.
func LoadConfigs(fnames []string) (*Config, error) {
	merged := Default()
	for _, fname := range fnames {
		slog.Info("Loading config", "file", fname)
		cfg, err := LoadYAML(fname)
		if err != nil {
			return nil, err
		}
		Merge(merged, cfg)
	}
	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// Merge copies the non-zero fields of src onto dst.
// A src process block with a non-zero dimension replaces dst's entirely.
func Merge(dst, src *Config) {
	if src.Seed != 0 {
		dst.Seed = src.Seed
	}
	if src.Paths != 0 {
		dst.Paths = src.Paths
	}
	if src.Mode != "" {
		dst.Mode = src.Mode
	}
	if src.ShockMode != "" {
		dst.ShockMode = src.ShockMode
	}
	if src.Output.Format != "" {
		dst.Output.Format = src.Output.Format
	}
	if src.Output.Path != "" {
		dst.Output.Path = src.Output.Path
	}
	if src.Process.Dimension != 0 {
		dst.Process = src.Process
	}
}

// MarshalYAML renders cfg as YAML (used by the CLI to echo the effective configuration).
func MarshalYAML(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
