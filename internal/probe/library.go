package probe

import (
	"context"
	"strings"

	"github.com/tungetti/checkup/internal/constants"
	"github.com/tungetti/checkup/internal/exec"
	"github.com/tungetti/checkup/internal/manifest"
)

// LibraryProbe checks whether a shared library is known to the dynamic
// linker. It scans the ldconfig cache listing for the library soname.
type LibraryProbe struct {
	name     string
	executor exec.Executor
}

// NewLibraryProbe creates a probe for a shared library soname
// (e.g., "libssl.so.3").
func NewLibraryProbe(name string, executor exec.Executor) *LibraryProbe {
	return &LibraryProbe{name: name, executor: executor}
}

// Name implements Probe.
func (p *LibraryProbe) Name() string {
	return p.name
}

// Kind implements Probe.
func (p *LibraryProbe) Kind() manifest.Kind {
	return manifest.KindLibrary
}

// Check runs "ldconfig -p" and looks for the soname. ldconfig being absent
// or failing is indistinguishable from the library being absent.
func (p *LibraryProbe) Check(ctx context.Context) (Outcome, string) {
	result := p.executor.Execute(ctx, constants.Ldconfig, "-p")
	if result.Failed() {
		return Missing, "ldconfig unavailable"
	}

	if path, ok := findLibrary(result.StdoutLines(), p.name); ok {
		return Available, path
	}
	return Missing, "not in dynamic linker cache"
}

// findLibrary scans ldconfig -p output for an exact soname match.
// Lines look like:
//
//	libssl.so.3 (libc6,x86-64) => /lib/x86_64-linux-gnu/libssl.so.3
func findLibrary(lines []string, name string) (string, bool) {
	for _, line := range lines {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 || fields[0] != name {
			continue
		}
		if idx := strings.LastIndex(line, "=> "); idx >= 0 {
			return strings.TrimSpace(line[idx+3:]), true
		}
		return "", true
	}
	return "", false
}

var _ Probe = (*LibraryProbe)(nil)
