// Copyright 2025 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads generator settings. Values come from built-in
// defaults, then an optional YAML file, then COTTONICONS_* environment
// variables. Command line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// Config holds the settings for a run.
type Config struct {
	// Corpora to generate, in the order given. Empty means all.
	Corpora []string `yaml:"corpora" env:"COTTONICONS_CORPORA" envSeparator:","`
	// SkipFetch reuses existing clones instead of cloning afresh.
	SkipFetch bool `yaml:"skip_fetch" env:"COTTONICONS_SKIP_FETCH"`
	// SnapshotRoot is the parent directory of the clones.
	SnapshotRoot string `yaml:"snapshot_root" env:"COTTONICONS_SNAPSHOT_ROOT"`
	// OutputRoot, if set, replaces each corpus's output directory with
	// OutputRoot/<corpus>.
	OutputRoot string `yaml:"output_root" env:"COTTONICONS_OUTPUT_ROOT"`
	Verbose    bool   `yaml:"verbose" env:"COTTONICONS_VERBOSE"`
	// FineLog lists corpora with debug logging enabled.
	FineLog []string `yaml:"finelog" env:"COTTONICONS_FINELOG" envSeparator:","`
	// Debounce is how long watch mode waits for changes to settle.
	Debounce time.Duration `yaml:"debounce" env:"COTTONICONS_DEBOUNCE"`
}

// DefaultDebounce is the watch mode debounce interval.
const DefaultDebounce = 500 * time.Millisecond

// ErrUnknownCorpus is returned by Validate for corpus names it does not know.
var ErrUnknownCorpus = errors.New("unknown corpus")

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SnapshotRoot: ".",
		Debounce:     DefaultDebounce,
	}
}

// Load returns the default settings overlaid with the YAML file at path,
// if path is not empty, and then with environ. A nil environ reads the
// process environment.
func Load(fs afero.Fs, path string, environ map[string]string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := ParseEnv(&cfg, environ); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables. Fields whose
// variable is unset keep their current value.
func ParseEnv(target any, environ map[string]string) error {
	if err := env.ParseWithOptions(target, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the settings against the names of the known corpora.
func (c Config) Validate(known ...string) error {
	for _, name := range slices.Concat(c.Corpora, c.FineLog) {
		if !slices.Contains(known, name) {
			return fmt.Errorf("%w %q (known: %v)", ErrUnknownCorpus, name, known)
		}
	}
	if c.Debounce < 0 {
		return fmt.Errorf("negative debounce %v", c.Debounce)
	}
	return nil
}

// Selected returns the corpora to run, in canonical order, with
// duplicates removed.
func (c Config) Selected(known ...string) []string {
	if len(c.Corpora) == 0 {
		return slices.Clone(known)
	}
	var out []string
	for _, name := range known {
		if slices.Contains(c.Corpora, name) {
			out = append(out, name)
		}
	}
	return out
}
