// Package probe implements dependency probing: given a named component and a
// resolution mechanism, determine whether the current environment can resolve
// it. A probe's answer is a two-valued Outcome, never an error; a dependency
// that cannot be resolved is a normal, reportable result. Whatever reason the
// underlying facility had for failing, the caller sees Missing.
package probe

import (
	"context"
	"time"

	"github.com/tungetti/checkup/internal/manifest"
)

// Outcome is the result of a single availability check.
type Outcome int

const (
	// Available means the environment resolved the dependency.
	Available Outcome = iota
	// Missing means the environment could not resolve the dependency.
	Missing
)

// String returns the outcome as a lowercase word.
func (o Outcome) String() string {
	if o == Available {
		return "available"
	}
	return "missing"
}

// Glyph returns the single-character marker used to report the outcome.
func (o Outcome) Glyph() string {
	if o == Available {
		return GlyphAvailable
	}
	return GlyphMissing
}

// Outcome glyphs. These are part of the output contract: one glyph, one
// space, then the dependency name.
const (
	// GlyphAvailable marks a resolved dependency.
	GlyphAvailable = "✓"
	// GlyphMissing marks an unresolved dependency.
	GlyphMissing = "✗"
)

// Probe checks the availability of one named dependency.
type Probe interface {
	// Name returns the identifier the probe resolves.
	Name() string

	// Kind returns the resolution mechanism the probe uses.
	Kind() manifest.Kind

	// Check attempts resolution and returns the outcome plus a short
	// human-readable detail (resolved path, version, or the reason the
	// check came up empty). Check never returns an error: any failure
	// of the underlying facility is a Missing outcome.
	Check(ctx context.Context) (Outcome, string)
}

// Result pairs one probed name with its outcome.
// Results are transient; they are produced during a run, reported, and
// never persisted or compared across runs.
type Result struct {
	Name     string        `json:"name"`
	Kind     manifest.Kind `json:"kind"`
	Outcome  Outcome       `json:"-"`
	Status   string        `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// Line renders the result as its report line: glyph, space, name.
func (r Result) Line() string {
	return r.Outcome.Glyph() + " " + r.Name
}
