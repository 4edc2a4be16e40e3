package probe

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter writes probe results to an output stream, one line per result,
// in result order. The line contract is fixed: glyph, one space, name.
// Styling wraps the glyph only, so the byte content of each line is stable
// whether or not color is enabled.
type Reporter struct {
	w       io.Writer
	color   bool
	verbose bool

	availableStyle lipgloss.Style
	missingStyle   lipgloss.Style
	detailStyle    lipgloss.Style
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithColor enables colored glyphs.
func WithColor() ReporterOption {
	return func(r *Reporter) { r.color = true }
}

// WithVerbose appends the probe detail to each line.
func WithVerbose() ReporterOption {
	return func(r *Reporter) { r.verbose = true }
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		w:              w,
		availableStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		missingStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		detailStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report writes the text report: one "✓ name" or "✗ name" line per result,
// in input order.
func (r *Reporter) Report(results []Result) error {
	for _, res := range results {
		if _, err := fmt.Fprintln(r.w, r.renderLine(res)); err != nil {
			return err
		}
	}
	return nil
}

// ReportJSON writes the results as an indented JSON array.
func (r *Reporter) ReportJSON(results []Result) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func (r *Reporter) renderLine(res Result) string {
	glyph := res.Outcome.Glyph()
	if r.color {
		if res.Outcome == Available {
			glyph = r.availableStyle.Render(glyph)
		} else {
			glyph = r.missingStyle.Render(glyph)
		}
	}

	line := glyph + " " + res.Name
	if r.verbose && res.Detail != "" {
		detail := "(" + res.Detail + ")"
		if r.color {
			detail = r.detailStyle.Render(detail)
		}
		line += " " + detail
	}
	return line
}
