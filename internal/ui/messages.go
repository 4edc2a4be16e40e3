package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tungetti/checkup/internal/probe"
)

// ResultsMsg carries the finished probe results back into the model.
type ResultsMsg struct {
	Results []probe.Result
}

// ErrorMsg carries a setup error that prevented the run from starting.
type ErrorMsg struct {
	Err error
}

// QuitMsg signals the application should quit.
type QuitMsg struct{}

// Quit returns a command that quits the application.
func Quit() tea.Cmd {
	return func() tea.Msg {
		return QuitMsg{}
	}
}

// ReportError returns a command that reports a setup error.
func ReportError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}
