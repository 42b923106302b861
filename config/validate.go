// SPDX-License-Identifier: MIT
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance; struct-level rules are registered once.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(processStructLevel, Process{})
}

// processStructLevel checks the cross-field rules tags cannot express:
// vector lengths against the dimension and a usable time grid.
func processStructLevel(sl validator.StructLevel) {
	p := sl.Current().Interface().(Process)
	c := p.Dimension
	if c < 1 {
		return // reported by the field tag
	}
	if len(p.X0) < c {
		sl.ReportError(p.X0, "X0", "x0", "mindim", fmt.Sprint(c))
	}
	if len(p.Mu) < c {
		sl.ReportError(p.Mu, "Mu", "mu", "mindim", fmt.Sprint(c))
	}
	if len(p.Sigma) < c {
		sl.ReportError(p.Sigma, "Sigma", "sigma", "mindim", fmt.Sprint(c))
	}
	switch n := len(p.Correlation); {
	case n == 0: // identity
	case n < c:
		sl.ReportError(p.Correlation, "Correlation", "correlation", "mindim", fmt.Sprint(c))
	default:
		for i := 0; i < c; i++ {
			if len(p.Correlation[i]) < c {
				sl.ReportError(p.Correlation[i], fmt.Sprintf("Correlation[%d]", i), "correlation", "mindim", fmt.Sprint(c))
			}
		}
	}

	t := p.Times
	if len(t.Points) == 0 && (t.Delta <= 0 || t.Steps < 1) {
		sl.ReportError(t, "Times", "times", "grid", "")
	}
	for j := 1; j < len(t.Points); j++ {
		if t.Points[j] < t.Points[j-1] {
			sl.ReportError(t.Points, "Points", "points", "nondecreasing", "")
			break
		}
	}
}

// Validate checks cfg against its struct tags and the cross-field rules.
// The error wraps ErrInvalidConfig and the validator's ValidationErrors.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
