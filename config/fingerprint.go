// SPDX-License-Identifier: MIT
package config

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint identifies everything that determines the generated numbers:
// seed, path count, mode, shock mode and process parameters. Output settings
// are excluded. Two runs with the same fingerprint produce the same paths.
func Fingerprint(cfg *Config) (uint64, error) {
	key := struct {
		Seed      uint64  `json:"seed"`
		Paths     int     `json:"paths"`
		Mode      string  `json:"mode"`
		ShockMode string  `json:"shockMode"`
		Process   Process `json:"process"`
	}{cfg.Seed, cfg.Paths, cfg.Mode, cfg.ShockMode, cfg.Process}

	b, err := json.Marshal(key)
	if err != nil {
		return 0, fmt.Errorf("config: fingerprint: %w", err)
	}

	return xxhash.Sum64(b), nil
}

// FingerprintString is Fingerprint in fixed-width hex, or "" on error.
func FingerprintString(cfg *Config) string {
	fp, err := Fingerprint(cfg)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("%016x", fp)
}
