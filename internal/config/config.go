// Package config loads cmd/filterctl's configuration: global CLI flags
// plus an optional YAML file supplying defaults for them, in the shape of
// the teacher's RootOptions (cli/root.go) and its YAML-based spec loading
// (cli/loader.go) — here applied to engine options instead of concept
// specs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the flags cmd/filterctl exposes on its root command.
// Zero values are the engine's defaults; a YAML file only needs to set
// the fields it wants to override.
type Config struct {
	Format         string   `yaml:"format"`
	Locale         string   `yaml:"locale"`
	IgnoreCase     bool     `yaml:"ignoreCase"`
	FoldDiacritics bool     `yaml:"foldDiacritics"`
	Targets        []string `yaml:"targets"`
	Verbose        bool     `yaml:"verbose"`
}

// ValidFormats are the output formats the CLI accepts.
var ValidFormats = []string{"text", "json"}

// Default returns the configuration in effect with no file and no flags.
func Default() Config {
	return Config{Format: "text"}
}

// LoadFile reads and parses a YAML config file. A missing path is not an
// error — it returns the zero Config so flag defaults apply untouched.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Merge layers override onto base, preferring override's non-zero
// fields. Flags parsed by cobra are applied as override so an explicit
// flag always wins over the file.
func Merge(base, override Config) Config {
	out := base
	if override.Format != "" {
		out.Format = override.Format
	}
	if override.Locale != "" {
		out.Locale = override.Locale
	}
	if override.IgnoreCase {
		out.IgnoreCase = true
	}
	if override.FoldDiacritics {
		out.FoldDiacritics = true
	}
	if len(override.Targets) > 0 {
		out.Targets = override.Targets
	}
	if override.Verbose {
		out.Verbose = true
	}
	return out
}

// Validate checks that Format names one of ValidFormats.
func Validate(c Config) error {
	for _, f := range ValidFormats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
}
