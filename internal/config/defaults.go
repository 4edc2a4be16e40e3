package config

import (
	"os"
	"path/filepath"

	"github.com/tungetti/checkup/internal/constants"
)

const (
	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"

	// FormatText is the human-readable glyph-per-line report format.
	FormatText = "text"

	// FormatJSON is the machine-readable report format.
	FormatJSON = "json"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       DefaultLogLevel,
		LogFile:        "",
		Verbose:        false,
		Quiet:          false,
		NoColor:        false,
		Format:         FormatText,
		ManifestPath:   "",
		ConfigDir:      defaultConfigDir(),
		CommandTimeout: constants.CommandTimeout,
		ProbeTimeout:   constants.ProbeTimeout,
	}
}

// defaultConfigDir returns the XDG config directory for checkup.
// Falls back to ~/.config/checkup if XDG_CONFIG_HOME is not set.
func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, constants.AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return filepath.Join(".", ".config", constants.AppName)
	}
	return filepath.Join(home, ".config", constants.AppName)
}

// GetConfigDir returns the configuration directory, respecting XDG.
func GetConfigDir() string {
	return defaultConfigDir()
}
