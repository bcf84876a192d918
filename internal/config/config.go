// Package config carries the tunable thresholds of the gate. Everything
// has a default; a .commitguard.yml at the repository root overrides
// individual fields.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the override file looked up at the repository root.
const DefaultFile = ".commitguard.yml"

type Coverage struct {
	Min    float64 `yaml:"min"`
	Target float64 `yaml:"target"`
}

type Bundle struct {
	MaxChunkKB int `yaml:"max_chunk_kb"`
	MaxTotalMB int `yaml:"max_total_mb"`
}

type Config struct {
	// Extensions selects which staged files the scanners look at.
	Extensions []string `yaml:"extensions"`

	// TestFileMarkers identify test files, which several checks relax for.
	TestFileMarkers []string `yaml:"test_file_markers"`

	ProtectedBranches []string `yaml:"protected_branches"`
	MaxFileSizeKB     int      `yaml:"max_file_size_kb"`
	Coverage          Coverage `yaml:"coverage"`
	Bundle            Bundle   `yaml:"bundle"`

	// SkipPaths are path substrings never scanned (build output, vendored
	// trees).
	SkipPaths []string `yaml:"skip_paths"`
}

func Default() Config {
	return Config{
		Extensions:        []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs", ".json"},
		TestFileMarkers:   []string{".test.", ".spec.", "__tests__", "__mocks__"},
		ProtectedBranches: []string{"main", "master", "production", "develop"},
		MaxFileSizeKB:     1024,
		Coverage:          Coverage{Min: 70, Target: 80},
		Bundle:            Bundle{MaxChunkKB: 500, MaxTotalMB: 10},
		SkipPaths:         []string{"node_modules/", ".next/", "dist/", "coverage/"},
	}
}

// Load returns the defaults overlaid with the YAML file at path. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// IsTestFile reports whether path carries one of the test markers.
func (c Config) IsTestFile(path string) bool {
	for _, m := range c.TestFileMarkers {
		if m != "" && strings.Contains(path, m) {
			return true
		}
	}
	return false
}

// Scannable reports whether a staged path should be content-scanned.
func (c Config) Scannable(path string) bool {
	for _, skip := range c.SkipPaths {
		if strings.Contains(path, skip) {
			return false
		}
	}
	for _, ext := range c.Extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
