// Package constants defines application-wide constants for the Checkup application.
// All constants are typed to ensure type safety and prevent accidental misuse.
package constants

import "time"

// Application metadata
const (
	// AppName is the application name used in logs, configs, and user messages.
	AppName string = "checkup"
	// AppDescription is a short description of the application.
	AppDescription string = "Dependency probe for Linux systems"
)

// ExitCode represents process exit codes for different termination scenarios.
type ExitCode int

const (
	// ExitSuccess indicates the application completed successfully.
	// A probe run always exits with this code, regardless of how many
	// dependencies were reported missing.
	ExitSuccess ExitCode = iota
	// ExitError indicates a general error occurred.
	ExitError
	// ExitValidation indicates invalid input or configuration.
	ExitValidation
	// ExitUserAbort indicates the user cancelled the operation.
	ExitUserAbort
)

// Int returns the exit code as an int for use with os.Exit().
func (e ExitCode) Int() int {
	return int(e)
}

// Timeouts for various operations. Probes are expected to be fast; the
// command timeout guards against a hung package manager or toolchain.
const (
	// DefaultTimeout is the standard timeout for a full probe run.
	DefaultTimeout time.Duration = 2 * time.Minute
	// CommandTimeout is for a single shell command execution.
	CommandTimeout time.Duration = 30 * time.Second
	// ProbeTimeout is the budget for a single probe check.
	ProbeTimeout time.Duration = 15 * time.Second
)

// File paths relative to user's home directory
const (
	// DefaultConfigDir is the default configuration directory relative to $HOME.
	DefaultConfigDir string = ".config/checkup"
	// ConfigFileName is the configuration file name.
	ConfigFileName string = "config.yaml"
	// ManifestFileName is the default probe manifest file name.
	ManifestFileName string = "manifest.yaml"
)

// System paths used by probes
const (
	// ProcModules is the path to the list of loaded kernel modules.
	ProcModules string = "/proc/modules"
)

// Probe tool command names
const (
	// Ldconfig is the dynamic linker cache tool used by library probes.
	Ldconfig string = "ldconfig"
	// GoTool is the Go toolchain command used by Go package probes.
	GoTool string = "go"
)

// Package manager command names
const (
	// DpkgQuery is the Debian package query tool command.
	DpkgQuery string = "dpkg-query"
	// Rpm is the RPM package tool command.
	Rpm string = "rpm"
	// Pacman is the Arch Linux package manager command.
	Pacman string = "pacman"
)

// ManagerFamily represents package manager families for the package probe.
type ManagerFamily string

const (
	// FamilyDebian covers dpkg-based systems (Debian, Ubuntu, Mint, ...).
	FamilyDebian ManagerFamily = "debian"
	// FamilyRPM covers rpm-based systems (Fedora, RHEL, openSUSE, ...).
	FamilyRPM ManagerFamily = "rpm"
	// FamilyArch covers pacman-based systems (Arch, Manjaro, ...).
	FamilyArch ManagerFamily = "arch"
	// FamilyUnknown indicates no recognized package manager.
	FamilyUnknown ManagerFamily = "unknown"
)

// String returns the string representation of the manager family.
func (f ManagerFamily) String() string {
	return string(f)
}
