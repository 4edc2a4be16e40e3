// Package manifest defines the ordered list of dependencies that checkup
// probes. The list is fixed at build time by default; an optional YAML
// manifest can replace it. Declaration order is preserved everywhere, since
// report output order must match manifest order.
package manifest

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tungetti/checkup/internal/errors"
)

// Kind selects the resolution mechanism used to probe an entry.
type Kind string

const (
	// KindCommand resolves an executable on PATH.
	KindCommand Kind = "command"
	// KindLibrary resolves a shared library known to the dynamic linker.
	KindLibrary Kind = "library"
	// KindKernel resolves a currently loaded kernel module.
	KindKernel Kind = "kernel"
	// KindPackage resolves an installed package via the system package manager.
	KindPackage Kind = "package"
	// KindGoPackage resolves a Go package via the local toolchain.
	KindGoPackage Kind = "gopkg"
)

// IsValid reports whether k is a recognized kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindCommand, KindLibrary, KindKernel, KindPackage, KindGoPackage:
		return true
	}
	return false
}

// String returns the kind as a string.
func (k Kind) String() string {
	return string(k)
}

// Entry names one dependency to probe.
type Entry struct {
	// Name is the identifier passed to the resolution mechanism:
	// a binary name, library soname, kernel module name, package name,
	// or Go import path depending on Kind.
	Name string `yaml:"name" json:"name"`

	// Kind selects the resolution mechanism. Defaults to KindCommand
	// when omitted in a manifest file.
	Kind Kind `yaml:"kind" json:"kind"`
}

// Default returns the built-in probe list. The four entries cover the
// external tools checkup's typical host environment is expected to carry.
func Default() []Entry {
	return []Entry{
		{Name: "git", Kind: KindCommand},
		{Name: "curl", Kind: KindCommand},
		{Name: "tar", Kind: KindCommand},
		{Name: "unzip", Kind: KindCommand},
	}
}

// file is the on-disk manifest shape.
type file struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads a YAML manifest from path, preserving entry order.
// Entries with an empty kind default to KindCommand. An unknown kind or
// an empty name is a validation error here, not at probe time.
func Load(path string) ([]Entry, error) {
	const op = "manifest.Load"

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.NotFound, err, "manifest not found: %s", path).WithOp(op)
		}
		return nil, errors.Wrap(errors.Configuration, "failed to read manifest", err).WithOp(op)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.Configuration, "failed to parse manifest", err).WithOp(op)
	}

	if len(f.Entries) == 0 {
		return nil, errors.Newf(errors.Validation, "manifest has no entries: %s", path).WithOp(op)
	}

	for i := range f.Entries {
		if f.Entries[i].Name == "" {
			return nil, errors.Newf(errors.Validation, "manifest entry %d has no name", i).WithOp(op)
		}
		if f.Entries[i].Kind == "" {
			f.Entries[i].Kind = KindCommand
		}
		if !f.Entries[i].Kind.IsValid() {
			return nil, errors.Newf(errors.Validation, "manifest entry %q has unknown kind %q",
				f.Entries[i].Name, f.Entries[i].Kind).WithOp(op)
		}
	}

	return f.Entries, nil
}

// Save writes entries to a YAML manifest at path.
func Save(path string, entries []Entry) error {
	const op = "manifest.Save"

	data, err := yaml.Marshal(file{Entries: entries})
	if err != nil {
		return errors.Wrap(errors.Configuration, "failed to marshal manifest", err).WithOp(op)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.Configuration, "failed to write manifest", err).WithOp(op)
	}

	return nil
}
