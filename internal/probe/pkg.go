package probe

import (
	"context"

	"github.com/tungetti/checkup/internal/manifest"
	"github.com/tungetti/checkup/internal/pkgmgr"
)

// PackageProbe checks whether a package is installed according to the
// system package manager.
type PackageProbe struct {
	name    string
	manager pkgmgr.Manager
}

// NewPackageProbe creates a probe for a package name. The manager may be
// nil when no supported package manager was detected; the probe then
// reports Missing rather than failing.
func NewPackageProbe(name string, manager pkgmgr.Manager) *PackageProbe {
	return &PackageProbe{name: name, manager: manager}
}

// Name implements Probe.
func (p *PackageProbe) Name() string {
	return p.name
}

// Kind implements Probe.
func (p *PackageProbe) Kind() manifest.Kind {
	return manifest.KindPackage
}

// Check queries the package manager. A query error is indistinguishable
// from the package being absent.
func (p *PackageProbe) Check(ctx context.Context) (Outcome, string) {
	if p.manager == nil {
		return Missing, "no supported package manager"
	}

	installed, err := p.manager.IsInstalled(ctx, p.name)
	if err != nil {
		return Missing, "query failed: " + err.Error()
	}
	if !installed {
		return Missing, "not installed (" + p.manager.Name() + ")"
	}
	return Available, "installed (" + p.manager.Name() + ")"
}

var _ Probe = (*PackageProbe)(nil)
