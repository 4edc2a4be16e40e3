package pkgmgr

import (
	"github.com/tungetti/checkup/internal/constants"
	"github.com/tungetti/checkup/internal/errors"
	"github.com/tungetti/checkup/internal/exec"
)

// Detect returns the package manager backend for the current system.
// Backends are tried in order and the first whose query binary is on PATH
// wins. Distribution identity is irrelevant for probing; the presence of
// the query tool is the only thing that matters.
func Detect(executor exec.Executor) (Manager, error) {
	for _, m := range All(executor) {
		if m.IsAvailable() {
			return m, nil
		}
	}
	return nil, errors.ErrNoManager
}

// All returns every backend, in detection order.
func All(executor exec.Executor) []Manager {
	return []Manager{
		NewDpkgManager(executor),
		NewRpmManager(executor),
		NewPacmanManager(executor),
	}
}

// ForFamily returns the backend for a specific manager family.
func ForFamily(executor exec.Executor, family constants.ManagerFamily) (Manager, error) {
	switch family {
	case constants.FamilyDebian:
		return NewDpkgManager(executor), nil
	case constants.FamilyRPM:
		return NewRpmManager(executor), nil
	case constants.FamilyArch:
		return NewPacmanManager(executor), nil
	default:
		return nil, errors.Newf(errors.Unsupported, "unsupported manager family: %s", family).
			WithOp("pkgmgr.ForFamily")
	}
}
