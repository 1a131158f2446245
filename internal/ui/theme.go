package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Row      lipgloss.Style
	Selected lipgloss.Style
	Hint     lipgloss.Style
}

var DefaultTheme = Theme{
	Row:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	Hint:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
}
