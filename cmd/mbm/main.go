// SPDX-License-Identifier: MIT
// Command mbm generates correlated multivariate Brownian motion paths from
// YAML configuration files.
//
//	mbm simulate base.yaml overrides.yaml --paths 1000 --format jsonl
//	mbm factor base.yaml
//	mbm config base.yaml overrides.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
