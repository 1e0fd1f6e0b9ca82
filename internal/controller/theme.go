package controller

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles used by the TUI.
type Theme struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
	Muted   lipgloss.Color

	TitleStyle  lipgloss.Style
	LabelStyle  lipgloss.Style
	PanelStyle  lipgloss.Style
	ErrorStyle  lipgloss.Style
	StatusStyle lipgloss.Style

	cells map[cellMark]lipgloss.Style
}

// DefaultTheme returns the default TUI theme.
func DefaultTheme() *Theme {
	theme := &Theme{
		Primary: lipgloss.Color("#7DCFFF"),
		Success: lipgloss.Color("#9ECE6A"),
		Warning: lipgloss.Color("#E0AF68"),
		Danger:  lipgloss.Color("#F7768E"),
		Muted:   lipgloss.Color("#565F89"),
	}

	theme.TitleStyle = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	theme.LabelStyle = lipgloss.NewStyle().
		Foreground(theme.Muted)

	theme.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Muted).
		Padding(0, 1)

	theme.ErrorStyle = lipgloss.NewStyle().
		Foreground(theme.Danger).
		Bold(true)

	theme.StatusStyle = lipgloss.NewStyle().
		Foreground(theme.Success)

	theme.cells = map[cellMark]lipgloss.Style{
		markFree:     lipgloss.NewStyle().Foreground(theme.Muted),
		markObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("#414868")),
		markVisited:  lipgloss.NewStyle().Foreground(theme.Primary),
		markFrontier: lipgloss.NewStyle().Foreground(theme.Warning),
		markPath:     lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
		markCurrent:  lipgloss.NewStyle().Foreground(theme.Danger).Bold(true),
		markStart:    lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
		markGoal:     lipgloss.NewStyle().Foreground(theme.Danger).Bold(true),
	}

	return theme
}

// cell renders the symbol for mark in its style.
func (t *Theme) cell(mark cellMark) string {
	return t.cells[mark].Render(plainSymbols[mark])
}
