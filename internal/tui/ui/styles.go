package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the styles used in the dashboard
type Styles struct {
	// Base styles
	App   lipgloss.Style
	Title lipgloss.Style

	// Status line
	StatusRunning lipgloss.Style
	StatusIdle    lipgloss.Style
	StatusElapsed lipgloss.Style

	// Entry list
	EntryTime     lipgloss.Style
	EntryDesc     lipgloss.Style
	EntryDuration lipgloss.Style

	// Totals
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Help bar
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Input
	InputFocused lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles returns the default dashboard styles
func DefaultStyles() Styles {
	// Color palette
	primary := lipgloss.Color("99")     // Purple
	secondary := lipgloss.Color("39")   // Cyan
	accent := lipgloss.Color("212")     // Pink
	muted := lipgloss.Color("240")      // Gray
	success := lipgloss.Color("82")     // Green
	warning := lipgloss.Color("214")    // Orange
	errorColor := lipgloss.Color("196") // Red

	return Styles{
		// Base styles
		App: lipgloss.NewStyle().Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		// Status line
		StatusRunning: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		StatusIdle: lipgloss.NewStyle().
			Foreground(muted),
		StatusElapsed: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		// Entry list
		EntryTime: lipgloss.NewStyle().
			Foreground(secondary).
			Width(14),
		EntryDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		EntryDuration: lipgloss.NewStyle().
			Foreground(accent).
			Width(8).
			Align(lipgloss.Right),

		// Totals
		StatLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(12),
		StatValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true),

		// Help bar
		HelpKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),

		// Input
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		// Errors and warnings
		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
	}
}
