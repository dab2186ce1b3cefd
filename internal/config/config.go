// Package config loads the devcalc command line configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/devcalc"
)

// FileName is the default configuration file name.
const FileName = "config.yaml"

// Config holds settings read from the YAML configuration file.
type Config struct {
	Base        devcalc.NumberBase `yaml:"base,omitempty"`         // Output base
	Steps       *bool              `yaml:"steps,omitempty"`        // Print reduction steps
	Prefix      *bool              `yaml:"prefix,omitempty"`       // Print 0b/0o/0x prefixes
	NBSP        *bool              `yaml:"nbsp,omitempty"`         // Treat U+00A0 as whitespace
	Lint        bool               `yaml:"lint,omitempty"`         // Print validation issues
	Prompt      string             `yaml:"prompt,omitempty"`       // REPL prompt
	HistoryFile string             `yaml:"history_file,omitempty"` // REPL history file
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Base: devcalc.Dec, Prompt: "devcalc> "}
}

// DefaultPath returns the per-user configuration file path.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "devcalc", FileName), nil
}

// Load reads the configuration at path on top of Default. When optional is
// set a missing file yields the defaults.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := Decode(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode unmarshals YAML data into cfg, keeping fields the data omits.
func Decode(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	if !cfg.Base.Valid() {
		cfg.Base = devcalc.Dec
	}
	if cfg.Prompt == "" {
		cfg.Prompt = Default().Prompt
	}

	return nil
}

// ShowSteps reports whether reduction steps are printed (default true).
func (c Config) ShowSteps() bool {
	return c.Steps == nil || *c.Steps
}

// ShowPrefix reports whether base prefixes are printed (default true).
func (c Config) ShowPrefix() bool {
	return c.Prefix == nil || *c.Prefix
}

// AllowNBSP reports whether no-break spaces are whitespace (default true).
func (c Config) AllowNBSP() bool {
	return c.NBSP == nil || *c.NBSP
}

// ParseOptions returns the library parse options for c.
func (c Config) ParseOptions() *devcalc.ParseOptions {
	return &devcalc.ParseOptions{DisableNBSP: !c.AllowNBSP()}
}

// EvalOptions returns the library eval options for c.
func (c Config) EvalOptions() *devcalc.EvalOptions {
	return &devcalc.EvalOptions{OutputBase: c.Base}
}

// FormatOptions returns the library format options for c.
func (c Config) FormatOptions() *devcalc.FormatOptions {
	return &devcalc.FormatOptions{DisableSteps: !c.ShowSteps(), DisablePrefix: !c.ShowPrefix()}
}
