package pkgmgr

import (
	"context"

	"github.com/tungetti/checkup/internal/constants"
	"github.com/tungetti/checkup/internal/errors"
	"github.com/tungetti/checkup/internal/exec"
)

// RpmManager implements Manager for RPM-family systems (Fedora, RHEL,
// openSUSE and derivatives) using rpm directly. Querying the rpm database
// works the same whether the frontend is dnf, yum, or zypper.
type RpmManager struct {
	executor exec.Executor
}

// NewRpmManager creates a new rpm backend.
func NewRpmManager(executor exec.Executor) *RpmManager {
	return &RpmManager{executor: executor}
}

// Name returns the package manager name.
func (m *RpmManager) Name() string {
	return "rpm"
}

// Family returns the manager family.
func (m *RpmManager) Family() constants.ManagerFamily {
	return constants.FamilyRPM
}

// IsAvailable checks if rpm is present on the system.
func (m *RpmManager) IsAvailable() bool {
	_, err := m.executor.LookPath(constants.Rpm)
	return err == nil
}

// IsInstalled queries the rpm database for the package.
func (m *RpmManager) IsInstalled(ctx context.Context, pkg string) (bool, error) {
	result := m.executor.Execute(ctx, constants.Rpm, "-q", pkg)

	if result.Error != nil {
		return false, errors.Wrapf(errors.PackageManager, result.Error,
			"rpm query failed for %q", pkg).WithOp("pkgmgr.rpm.IsInstalled")
	}

	// rpm -q exits 0 when the package is installed, 1 when it is not.
	return result.ExitCode == 0, nil
}

var _ Manager = (*RpmManager)(nil)
