// Package ui provides the Bubble Tea TUI for checkup. It shows a spinner
// while the probes run, then renders the per-dependency results with the
// same glyphs the plain text report uses.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tungetti/checkup/internal/probe"
)

// Phase represents the current stage of the interactive run.
type Phase int

const (
	// PhaseRunning is shown while probes are executing.
	PhaseRunning Phase = iota
	// PhaseDone is shown once all results are in.
	PhaseDone
	// PhaseError is shown when the run could not start.
	PhaseError
)

// String returns the string representation of a Phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseDone:
		return "Done"
	case PhaseError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Model is the main Bubble Tea model for the checkup TUI.
type Model struct {
	// Phase is the current stage of the run.
	Phase Phase

	// Results holds the probe results once the run completes.
	Results []probe.Result

	// Err holds a setup error, if the run could not start.
	Err error

	// Width and Height track the terminal size.
	Width  int
	Height int

	// Quitting indicates the application is shutting down.
	Quitting bool

	probes  []probe.Probe
	runner  *probe.Runner
	spinner spinner.Model
	styles  Styles
	keyMap  KeyMap

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a TUI model that will run the given probes.
func New(runner *probe.Runner, probes []probe.Probe) Model {
	return NewWithContext(context.Background(), runner, probes)
}

// NewWithContext creates a TUI model with a custom parent context.
func NewWithContext(ctx context.Context, runner *probe.Runner, probes []probe.Probe) Model {
	childCtx, cancel := context.WithCancel(ctx)

	styles := DefaultStyles()
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return Model{
		Phase:   PhaseRunning,
		probes:  probes,
		runner:  runner,
		spinner: s,
		styles:  styles,
		keyMap:  DefaultKeyMap(),
		ctx:     childCtx,
		cancel:  cancel,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runProbes())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.Phase != PhaseRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ResultsMsg:
		m.Phase = PhaseDone
		m.Results = msg.Results
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case QuitMsg:
		m.Quitting = true
		m.cancel()
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	switch m.Phase {
	case PhaseRunning:
		return m.renderRunning()
	case PhaseDone:
		return m.renderResults()
	case PhaseError:
		return m.renderError()
	default:
		return ""
	}
}

// Shutdown cancels the run context and performs cleanup.
func (m *Model) Shutdown() {
	if m.cancel != nil {
		m.cancel()
	}
}

// runProbes returns a command that executes all probes and delivers the
// results as a single message.
func (m Model) runProbes() tea.Cmd {
	return func() tea.Msg {
		return ResultsMsg{Results: m.runner.Run(m.ctx, m.probes)}
	}
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, Quit()

	case key.Matches(msg, m.keyMap.Rerun):
		if m.Phase != PhaseDone {
			return m, nil
		}
		m.Phase = PhaseRunning
		m.Results = nil
		return m, tea.Batch(m.spinner.Tick, m.runProbes())
	}

	return m, nil
}

func (m Model) renderRunning() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("checkup") + "\n\n")
	b.WriteString(fmt.Sprintf("%s checking %d dependencies...\n",
		m.spinner.View(), len(m.probes)))
	b.WriteString("\n" + m.styles.Help.Render("press q to quit"))
	return b.String()
}

func (m Model) renderResults() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("checkup") + "\n\n")

	available := 0
	for _, res := range m.Results {
		glyph := res.Outcome.Glyph()
		if res.Outcome == probe.Available {
			glyph = m.styles.Available.Render(glyph)
			available++
		} else {
			glyph = m.styles.Missing.Render(glyph)
		}
		b.WriteString(glyph + " " + res.Name)
		if res.Detail != "" {
			b.WriteString(" " + m.styles.Detail.Render("("+res.Detail+")"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.styles.Summary.Render(
		fmt.Sprintf("%d/%d available", available, len(m.Results))) + "\n")
	b.WriteString("\n" + m.styles.Help.Render("press r to re-run, q to quit"))
	return b.String()
}

func (m Model) renderError() string {
	errMsg := "unknown error"
	if m.Err != nil {
		errMsg = m.Err.Error()
	}
	return m.styles.Missing.Render("error: "+errMsg) + "\n\n" +
		m.styles.Help.Render("press q to quit")
}
