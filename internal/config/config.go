// Package config provides configuration management for the Checkup application.
// It supports loading configuration from YAML files and environment variables,
// with validation and sensible defaults. The package follows XDG Base Directory
// specification for locating configuration files.
package config

import (
	"path/filepath"
	"time"

	"github.com/tungetti/checkup/internal/constants"
)

// Config represents the application configuration.
// Configuration values can be set via YAML file or environment variables,
// with environment variables taking precedence.
type Config struct {
	// General settings
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	Verbose  bool   `yaml:"verbose"`
	Quiet    bool   `yaml:"quiet"`
	NoColor  bool   `yaml:"no_color"`

	// Output format for probe reports: "text" or "json".
	Format string `yaml:"format"`

	// ManifestPath points to a YAML manifest listing the entries to probe.
	// Empty means the built-in default list.
	ManifestPath string `yaml:"manifest"`

	// Directories
	ConfigDir string `yaml:"config_dir"`

	// Timeouts
	CommandTimeout time.Duration `yaml:"command_timeout"`
	ProbeTimeout   time.Duration `yaml:"probe_timeout"`
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.ConfigDir, constants.ConfigFileName)
}

// IsVerbose returns true if verbose output is enabled and quiet is not.
func (c *Config) IsVerbose() bool {
	return c.Verbose && !c.Quiet
}

// IsSilent returns true if quiet mode is enabled.
func (c *Config) IsSilent() bool {
	return c.Quiet
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
