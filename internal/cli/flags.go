// Package cli provides command-line argument parsing for the checkup
// application. It supports subcommands, global flags, and command-specific
// flags with both short and long variants. The parser integrates with the
// config package to provide a unified configuration experience.
package cli

// GlobalFlags holds flags common to all commands.
// These flags can be specified before the command name and affect
// the overall behavior of the application.
type GlobalFlags struct {
	// Verbose enables detailed output for debugging and troubleshooting.
	Verbose bool

	// Quiet suppresses non-essential output, only showing errors.
	Quiet bool

	// ConfigFile specifies a custom configuration file path.
	ConfigFile string

	// LogFile specifies the path to write log output.
	LogFile string

	// LogLevel sets the logging verbosity (debug, info, warn, error).
	LogLevel string

	// NoColor disables colored terminal output.
	NoColor bool
}

// CheckFlags holds check command specific flags.
// These flags control which dependencies are probed and how results
// are rendered.
type CheckFlags struct {
	// Manifest specifies a manifest file to probe instead of the defaults.
	Manifest string

	// JSON outputs results in JSON format.
	JSON bool

	// Detail appends the resolution detail to each result line.
	Detail bool
}

// ListFlags holds list command specific flags.
type ListFlags struct {
	// Manifest specifies a manifest file to list instead of the defaults.
	Manifest string

	// JSON outputs the list in JSON format.
	JSON bool
}

// UIFlags holds ui command specific flags.
type UIFlags struct {
	// Manifest specifies a manifest file to probe instead of the defaults.
	Manifest string
}

// Validate checks GlobalFlags for conflicting options.
// It returns an error if incompatible flags are set together.
func (f *GlobalFlags) Validate() error {
	if f.Verbose && f.Quiet {
		return &FlagError{
			Flag:    "verbose/quiet",
			Message: "cannot use --verbose and --quiet together",
		}
	}
	return nil
}

// FlagError represents an error with a command-line flag.
type FlagError struct {
	Flag    string
	Message string
}

// Error implements the error interface.
func (e *FlagError) Error() string {
	return "flag error: " + e.Flag + ": " + e.Message
}
