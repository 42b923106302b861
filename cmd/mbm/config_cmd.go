// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hadjar2027/ssj/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config <config.yaml>...",
		Short: "Print the merged and validated configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("no config files provided")
			}
			cfg, err := config.LoadConfigs(args)
			if err != nil {
				return fmt.Errorf("error loading config files: %w", err)
			}
			b, err := config.MarshalYAML(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# fingerprint %s\n", config.FingerprintString(cfg))
			_, err = cmd.OutOrStdout().Write(b)

			return err
		},
	}
}
