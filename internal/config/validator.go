package config

import (
	"github.com/tungetti/checkup/internal/errors"
	"github.com/tungetti/checkup/internal/logging"
)

// Validate checks a configuration for invalid or conflicting values.
// It returns the first problem found as a Validation error.
func Validate(cfg *Config) error {
	const op = "config.Validate"

	if cfg == nil {
		return errors.New(errors.Validation, "configuration is nil").WithOp(op)
	}

	if !logging.IsValid(cfg.LogLevel) {
		return errors.Newf(errors.Validation, "invalid log level: %q", cfg.LogLevel).WithOp(op)
	}

	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return errors.Newf(errors.Validation, "invalid output format: %q", cfg.Format).WithOp(op)
	}

	if cfg.Verbose && cfg.Quiet {
		return errors.New(errors.Validation, "verbose and quiet cannot both be set").WithOp(op)
	}

	if cfg.CommandTimeout < 0 {
		return errors.New(errors.Validation, "command timeout cannot be negative").WithOp(op)
	}

	if cfg.ProbeTimeout < 0 {
		return errors.New(errors.Validation, "probe timeout cannot be negative").WithOp(op)
	}

	return nil
}
