package tui

import "github.com/charmbracelet/lipgloss"

var (
	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#8B5CF6")).
			Padding(0, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginTop(1)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FDA4AF"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6EE7B7"))

	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	noStyle       = lipgloss.NewStyle()
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
	helpStyle     = blurredStyle
)
