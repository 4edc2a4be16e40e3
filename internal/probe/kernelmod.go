package probe

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"strings"

	"github.com/tungetti/checkup/internal/constants"
	"github.com/tungetti/checkup/internal/manifest"
)

// FileReader reads files for probes, allowing the filesystem to be mocked
// in tests.
type FileReader interface {
	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)
}

// DefaultFileReader uses the real filesystem.
type DefaultFileReader struct{}

// ReadFile implements FileReader.
func (r *DefaultFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// KernelModuleProbe checks whether a kernel module is currently loaded by
// scanning /proc/modules.
type KernelModuleProbe struct {
	name   string
	reader FileReader
}

// NewKernelModuleProbe creates a probe for a kernel module name.
// If reader is nil, DefaultFileReader is used.
func NewKernelModuleProbe(name string, reader FileReader) *KernelModuleProbe {
	if reader == nil {
		reader = &DefaultFileReader{}
	}
	return &KernelModuleProbe{name: name, reader: reader}
}

// Name implements Probe.
func (p *KernelModuleProbe) Name() string {
	return p.name
}

// Kind implements Probe.
func (p *KernelModuleProbe) Kind() manifest.Kind {
	return manifest.KindKernel
}

// Check scans /proc/modules for the module name. An unreadable module list
// (e.g., a non-Linux host) is indistinguishable from the module being absent.
func (p *KernelModuleProbe) Check(ctx context.Context) (Outcome, string) {
	content, err := p.reader.ReadFile(constants.ProcModules)
	if err != nil {
		return Missing, "cannot read " + constants.ProcModules
	}

	if state, ok := findModule(content, p.name); ok {
		return Available, "loaded (" + state + ")"
	}
	return Missing, "not loaded"
}

// findModule scans /proc/modules content for a module. Each line has the form:
//
//	name size used_count dependencies state address
//
// Module names use underscores in /proc/modules while userspace tools accept
// dashes interchangeably, so names are normalized before comparison.
func findModule(content []byte, name string) (string, bool) {
	want := normalizeModuleName(name)

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 5 {
			continue
		}
		if normalizeModuleName(fields[0]) == want {
			return fields[4], true
		}
	}
	return "", false
}

// normalizeModuleName maps dashes to underscores, matching modprobe behavior.
func normalizeModuleName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

var _ Probe = (*KernelModuleProbe)(nil)
