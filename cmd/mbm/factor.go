// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hadjar2027/ssj/config"
	"github.com/hadjar2027/ssj/matrix"
	"github.com/hadjar2027/ssj/randvar"
	"github.com/hadjar2027/ssj/simulate"
)

func newFactorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factor <config.yaml>...",
		Short: "Print the covariance matrix and its Cholesky factor",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("no config files provided")
			}
			cfg, err := config.LoadConfigs(args)
			if err != nil {
				return fmt.Errorf("error loading config files: %w", err)
			}
			proc, err := simulate.NewProcess(cfg, randvar.NewInversionGen(randvar.NewPCGStream(cfg.Seed)), nil)
			if err != nil {
				return err
			}

			c := proc.Dimension()
			cov, err := matrix.NewDenseFromRows(proc.Covariance(), c, c)
			if err != nil {
				return err
			}
			l, err := proc.Factor()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "fingerprint: %s\n", config.FingerprintString(cfg))
			fmt.Fprintf(out, "covariance:\n%s", cov)
			fmt.Fprintf(out, "factor:\n%s", l)

			return nil
		},
	}
}
