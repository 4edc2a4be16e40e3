package probe

import (
	"github.com/tungetti/checkup/internal/errors"
	"github.com/tungetti/checkup/internal/exec"
	"github.com/tungetti/checkup/internal/manifest"
	"github.com/tungetti/checkup/internal/pkgmgr"
)

// Deps holds the shared collaborators probes are built from.
type Deps struct {
	// Executor runs external commands. Required.
	Executor exec.Executor

	// Manager answers package queries. May be nil when no supported
	// package manager is present; package probes then report Missing.
	Manager pkgmgr.Manager

	// Reader reads system files. Nil means the real filesystem.
	Reader FileReader
}

// FromEntry builds the probe for one manifest entry.
func FromEntry(e manifest.Entry, deps Deps) (Probe, error) {
	const op = "probe.FromEntry"

	if deps.Executor == nil {
		return nil, errors.New(errors.Probe, "executor is required").WithOp(op)
	}

	switch e.Kind {
	case manifest.KindCommand:
		return NewCommandProbe(e.Name, deps.Executor), nil
	case manifest.KindLibrary:
		return NewLibraryProbe(e.Name, deps.Executor), nil
	case manifest.KindKernel:
		return NewKernelModuleProbe(e.Name, deps.Reader), nil
	case manifest.KindPackage:
		return NewPackageProbe(e.Name, deps.Manager), nil
	case manifest.KindGoPackage:
		return NewGoPackageProbe(e.Name, deps.Executor), nil
	default:
		return nil, errors.Newf(errors.Validation, "unknown probe kind: %q", e.Kind).WithOp(op)
	}
}

// FromEntries builds probes for all entries, preserving order.
func FromEntries(entries []manifest.Entry, deps Deps) ([]Probe, error) {
	probes := make([]Probe, 0, len(entries))
	for _, e := range entries {
		p, err := FromEntry(e, deps)
		if err != nil {
			return nil, err
		}
		probes = append(probes, p)
	}
	return probes, nil
}
