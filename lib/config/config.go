// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the mesave CLI.
//
// Configuration is loaded from a single YAML file specified by:
//   - MESAVE_CONFIG environment variable, or
//   - --config flag passed to the command
//
// When neither is set, built-in defaults apply. There is no automatic
// discovery of config files in home or working directories — the file
// is always named explicitly, so behavior stays deterministic and
// auditable.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the mesave tool configuration.
type Config struct {
	// BackupDir is where repack keeps backup copies of original save
	// files when --backup is set. ${HOME} is expanded.
	BackupDir string `yaml:"backup_dir"`

	// WriteManifest makes repack emit a CBOR manifest sidecar by
	// default, without requiring --manifest on every invocation.
	WriteManifest bool `yaml:"write_manifest"`

	// LogLevel is the slog level for diagnostic output: debug, info,
	// warn, or error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		BackupDir:     filepath.Join(homeDir, ".cache", "mesave", "backups"),
		WriteManifest: false,
		LogLevel:      "info",
	}
}

// Load loads configuration from the MESAVE_CONFIG environment
// variable, falling back to [Default] when it is not set.
func Load() (*Config, error) {
	configPath := os.Getenv("MESAVE_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merging
// over the defaults. Environment variables do not override config
// values; the only expansion performed is ${HOME} in paths.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.BackupDir = os.Expand(cfg.BackupDir, func(name string) string {
		if name == "HOME" {
			home, _ := os.UserHomeDir()
			return home
		}
		return os.Getenv(name)
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.BackupDir == "" {
		return fmt.Errorf("backup_dir is required")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level as a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level %q must be one of: debug, info, warn, error", c.LogLevel)
	}
}
