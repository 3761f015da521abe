// Package config loads optional TOML configuration for sitehash.
// Command-line flags take precedence over the file; the file takes
// precedence over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Hasher holds pipeline defaults.
type Hasher struct {
	Algorithm      string `toml:"algorithm"`
	Retries        int    `toml:"retries"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Browser holds headless-browser launch configuration. Flags are merged
// over the default of headless: true; ExecPath selects a specific browser
// binary.
type Browser struct {
	ExecPath string         `toml:"exec_path"`
	Flags    map[string]any `toml:"flags"`
}

// Config is the root configuration.
type Config struct {
	Hasher  Hasher  `toml:"hasher"`
	Browser Browser `toml:"browser"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Hasher: Hasher{
			Algorithm:      "sha256",
			Retries:        3,
			TimeoutSeconds: 5,
		},
	}
}

// Load reads the TOML file at path, layered over the defaults. An empty
// path or a missing file yields the defaults; a malformed file is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Timeout returns the per-attempt fetch timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.Hasher.TimeoutSeconds) * time.Second
}

// BrowserFlags returns the launch flag map for the render session,
// folding ExecPath in under its reserved key.
func (c Config) BrowserFlags() map[string]any {
	flags := make(map[string]any, len(c.Browser.Flags)+1)
	for name, value := range c.Browser.Flags {
		flags[name] = value
	}
	if c.Browser.ExecPath != "" {
		flags["exec_path"] = c.Browser.ExecPath
	}
	return flags
}
