package pkgmgr

import (
	"context"
	"strings"

	"github.com/tungetti/checkup/internal/constants"
	"github.com/tungetti/checkup/internal/errors"
	"github.com/tungetti/checkup/internal/exec"
)

// DpkgManager implements Manager for Debian-family systems using dpkg-query.
type DpkgManager struct {
	executor exec.Executor
}

// NewDpkgManager creates a new dpkg backend.
func NewDpkgManager(executor exec.Executor) *DpkgManager {
	return &DpkgManager{executor: executor}
}

// Name returns the package manager name.
func (m *DpkgManager) Name() string {
	return "dpkg"
}

// Family returns the manager family.
func (m *DpkgManager) Family() constants.ManagerFamily {
	return constants.FamilyDebian
}

// IsAvailable checks if dpkg-query is present on the system.
func (m *DpkgManager) IsAvailable() bool {
	_, err := m.executor.LookPath(constants.DpkgQuery)
	return err == nil
}

// IsInstalled checks the dpkg status database for the package.
// A package that is known to dpkg but removed or half-configured does not
// count as installed.
func (m *DpkgManager) IsInstalled(ctx context.Context, pkg string) (bool, error) {
	result := m.executor.Execute(ctx, constants.DpkgQuery, "-W", "-f", "${Status}", pkg)

	if result.Error != nil {
		return false, errors.Wrapf(errors.PackageManager, result.Error,
			"dpkg-query failed for %q", pkg).WithOp("pkgmgr.dpkg.IsInstalled")
	}

	// Non-zero exit means the package is not in the status database.
	if result.ExitCode != 0 {
		return false, nil
	}

	return strings.Contains(result.StdoutString(), "install ok installed"), nil
}

var _ Manager = (*DpkgManager)(nil)
