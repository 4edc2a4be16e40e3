package probe

import (
	"context"

	"github.com/tungetti/checkup/internal/exec"
	"github.com/tungetti/checkup/internal/manifest"
)

// CommandProbe checks whether an executable can be resolved on PATH.
type CommandProbe struct {
	name     string
	executor exec.Executor
}

// NewCommandProbe creates a probe for an executable name.
func NewCommandProbe(name string, executor exec.Executor) *CommandProbe {
	return &CommandProbe{name: name, executor: executor}
}

// Name implements Probe.
func (p *CommandProbe) Name() string {
	return p.name
}

// Kind implements Probe.
func (p *CommandProbe) Kind() manifest.Kind {
	return manifest.KindCommand
}

// Check resolves the name against PATH. The detail is the resolved path on
// success, or the lookup error text when the binary is not found.
func (p *CommandProbe) Check(ctx context.Context) (Outcome, string) {
	path, err := p.executor.LookPath(p.name)
	if err != nil {
		return Missing, err.Error()
	}
	return Available, path
}

var _ Probe = (*CommandProbe)(nil)
