// config_loader.go: JSONC config file loading
//
// Grounded on calvinalkan-agent-task's config.go loader pipeline
// (os.ReadFile, then hujson.Standardize to tolerate comments and
// trailing commas, then json.Unmarshal). The cache's own New
// constructor never reads a file directly; LoadConfig is a separate
// step so a process's config file can be discovered and validated
// before any Cache is constructed.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package slotcache

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// LoadConfig reads a JSONC config file at path, applying its fields
// over DefaultConfig. Comments and trailing commas are accepted.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		return Config{}, fmt.Errorf("slotcache: reading config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses JSONC bytes into a Config, starting from
// DefaultConfig so unspecified fields keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("slotcache: invalid JSONC: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("slotcache: invalid config: %w", err)
	}
	return cfg, nil
}
