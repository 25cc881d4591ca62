// Package config defines InterpreterConfig, the tunable limits and
// diagnostics settings a factory wires into an interpreter.Interpreter.
//
// Grounded on the teacher's root config.go (Config/DefaultConfig/LoadConfig,
// extension-dispatched YAML-or-JSON loading), narrowed to the handful of
// settings spec.md's core actually admits: recursion ceilings, the enabled
// built-in set, and log verbosity.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// InterpreterConfig carries every setting a factory needs to build an
// interpreter.Interpreter. DisabledBuiltins removes the named calls from
// the runtime table; the other fields do not change evaluation semantics on
// a correctly-behaved program, they bound implementation resources
// (recursion depth) and diagnostics (log level, verbosity).
type InterpreterConfig struct {
	MaxParseDepth    int      `yaml:"maxParseDepth" json:"maxParseDepth"`
	MaxEvalDepth     int      `yaml:"maxEvalDepth" json:"maxEvalDepth"`
	DisabledBuiltins []string `yaml:"disabledBuiltins" json:"disabledBuiltins"`
	LogLevel         string   `yaml:"logLevel" json:"logLevel"`
	Verbose          bool     `yaml:"verbose" json:"verbose"`
}

// Default returns the spec-conformant defaults: a 512-deep parser and a
// 4096-deep evaluator, every built-in enabled, error-level logging, and no
// verbose tracing.
func Default() *InterpreterConfig {
	return &InterpreterConfig{
		MaxParseDepth:    512,
		MaxEvalDepth:     4096,
		DisabledBuiltins: nil,
		LogLevel:         "error",
		Verbose:          false,
	}
}

// Load reads an InterpreterConfig from path, dispatching YAML or JSON by
// file extension (defaulting to YAML for anything else), starting from
// Default() so a partial file only overrides the fields it sets.
func Load(path string) (*InterpreterConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return cfg, nil
}
