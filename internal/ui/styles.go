package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the interactive view.
type Styles struct {
	Title     lipgloss.Style
	Spinner   lipgloss.Style
	Available lipgloss.Style
	Missing   lipgloss.Style
	Detail    lipgloss.Style
	Help      lipgloss.Style
	Summary   lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")),
		Spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")),
		Available: lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")),
		Missing: lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")),
		Detail: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Summary: lipgloss.NewStyle().
			Bold(true),
	}
}
