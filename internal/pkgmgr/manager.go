// Package pkgmgr provides a query-only package manager abstraction backing
// the package probe kind. Each backend answers two questions: is this
// package manager present on the system, and is a given package installed.
// Probing never installs, removes, or mutates anything.
package pkgmgr

import (
	"context"

	"github.com/tungetti/checkup/internal/constants"
)

// Manager is the query interface implemented by each package manager backend.
//
// All methods accept a context.Context to support cancellation and timeout
// handling. Implementations must be safe for concurrent use.
type Manager interface {
	// Name returns the package manager name (e.g., "dpkg", "rpm", "pacman").
	Name() string

	// Family returns the manager family this backend supports.
	Family() constants.ManagerFamily

	// IsAvailable checks if this package manager is present on the system.
	// This checks for the presence of the query binary only.
	IsAvailable() bool

	// IsInstalled checks if a package is currently installed.
	// Returns true if installed, false otherwise.
	// Returns an error only if the check itself fails to run.
	IsInstalled(ctx context.Context, pkg string) (bool, error)
}
