// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package config loads and persists solver parameters and per-seed
// results, the same yaml.v3-backed shape the teacher's save.go uses
// for its own game-save file.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds one search run's parameters.
type Config struct {
	Seed         uint32        `yaml:"seed"`
	Budget       time.Duration `yaml:"budget"`
	Aggressive   bool          `yaml:"aggressive"`
	Verbose      bool          `yaml:"verbose"`
}

// Load reads a Config from a yaml file at path.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Persist writes cfg to path as yaml, creating or truncating the file.
func Persist(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Result is the per-seed outcome record the CLI writes out: one seed's
// search, not an aggregated batch of many (that aggregation remains an
// external collaborator).
type Result struct {
	Seed          uint32   `yaml:"seed"`
	Status        string   `yaml:"status"`
	Moves         []string `yaml:"moves,omitempty"`
	StatesVisited int      `yaml:"states_visited"`
	DuplicatesCulled int   `yaml:"duplicates_culled"`
	DeadEnds      int      `yaml:"dead_ends"`
	ElapsedMillis int64    `yaml:"elapsed_millis"`
}

// PersistResult writes one Result to path as yaml.
func PersistResult(path string, r Result) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
