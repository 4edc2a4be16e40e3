package probe

import (
	"context"
	"strings"

	"github.com/tungetti/checkup/internal/constants"
	"github.com/tungetti/checkup/internal/exec"
	"github.com/tungetti/checkup/internal/manifest"
)

// GoPackageProbe checks whether the local Go toolchain can resolve an import
// path. This is the closest analogue of a dynamic import: ask the toolchain
// to load the package by name and treat any refusal as absence.
type GoPackageProbe struct {
	importPath string
	executor   exec.Executor
}

// NewGoPackageProbe creates a probe for a Go import path.
func NewGoPackageProbe(importPath string, executor exec.Executor) *GoPackageProbe {
	return &GoPackageProbe{importPath: importPath, executor: executor}
}

// Name implements Probe.
func (p *GoPackageProbe) Name() string {
	return p.importPath
}

// Kind implements Probe.
func (p *GoPackageProbe) Kind() manifest.Kind {
	return manifest.KindGoPackage
}

// Check runs "go list" for the import path. A missing toolchain, an
// unresolvable path, and a broken package all report Missing.
func (p *GoPackageProbe) Check(ctx context.Context) (Outcome, string) {
	result := p.executor.Execute(ctx, constants.GoTool, "list", "--", p.importPath)
	if result.Error != nil {
		return Missing, "go toolchain unavailable"
	}
	if result.ExitCode != 0 {
		detail := strings.TrimSpace(result.StderrString())
		if detail == "" {
			detail = "not resolvable"
		}
		return Missing, firstLine(detail)
	}
	return Available, strings.TrimSpace(result.StdoutString())
}

// firstLine trims multi-line toolchain errors down to their first line.
func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

var _ Probe = (*GoPackageProbe)(nil)
