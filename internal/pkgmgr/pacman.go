package pkgmgr

import (
	"context"

	"github.com/tungetti/checkup/internal/constants"
	"github.com/tungetti/checkup/internal/errors"
	"github.com/tungetti/checkup/internal/exec"
)

// PacmanManager implements Manager for Arch-family systems using pacman.
type PacmanManager struct {
	executor exec.Executor
}

// NewPacmanManager creates a new pacman backend.
func NewPacmanManager(executor exec.Executor) *PacmanManager {
	return &PacmanManager{executor: executor}
}

// Name returns the package manager name.
func (m *PacmanManager) Name() string {
	return "pacman"
}

// Family returns the manager family.
func (m *PacmanManager) Family() constants.ManagerFamily {
	return constants.FamilyArch
}

// IsAvailable checks if pacman is present on the system.
func (m *PacmanManager) IsAvailable() bool {
	_, err := m.executor.LookPath(constants.Pacman)
	return err == nil
}

// IsInstalled queries the local pacman database for the package.
func (m *PacmanManager) IsInstalled(ctx context.Context, pkg string) (bool, error) {
	result := m.executor.Execute(ctx, constants.Pacman, "-Qi", pkg)

	if result.Error != nil {
		return false, errors.Wrapf(errors.PackageManager, result.Error,
			"pacman query failed for %q", pkg).WithOp("pkgmgr.pacman.IsInstalled")
	}

	// pacman -Qi exits 0 when the package is installed, 1 when it is not.
	return result.ExitCode == 0, nil
}

var _ Manager = (*PacmanManager)(nil)
