// Package config loads the YAML document that describes a batch of
// Levenshtein-automaton checks for cmd/levauto: which patterns and
// budgets to build, and where the lines to check against come from.
//
// The loading shape (read file, yaml.Unmarshal, surface syntax errors
// via yaml.FormatError) mirrors the config file handling in
// projectdiscovery/alterx's internal/runner/config.go.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Check describes one (pattern, budget) automaton to build and the
// input it should be checked against.
type Check struct {
	Pattern string `yaml:"pattern"`
	K       int    `yaml:"k"`
	// Input is a file path, or "-" (the default) to read from stdin.
	Input string `yaml:"input"`
}

// Batch is the top-level shape of a levauto batch config file.
type Batch struct {
	Checks []Check `yaml:"checks"`
}

// Load reads and parses the batch config at path.
func Load(path string) (*Batch, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var b Batch
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("config: %s: %s", path, yaml.FormatError(err, false, true))
	}
	if err := b.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &b, nil
}

func (b *Batch) validate() error {
	if len(b.Checks) == 0 {
		return fmt.Errorf("no checks defined")
	}
	for i, c := range b.Checks {
		if c.Pattern == "" {
			return fmt.Errorf("checks[%d]: pattern must not be empty", i)
		}
		if c.K < 0 {
			return fmt.Errorf("checks[%d]: k must be non-negative, got %d", i, c.K)
		}
	}
	return nil
}
