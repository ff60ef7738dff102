package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the core UI styles
var Theme = struct {
	Pane      lipgloss.Style
	Title     lipgloss.Style
	Selected  lipgloss.Style
	Directory lipgloss.Style
	File      lipgloss.Style
	Info      lipgloss.Style
	Help      lipgloss.Style
}{
	Pane: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Padding(0, 1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7B61FF")),
	Selected: lipgloss.NewStyle().
		Reverse(true),
	Directory: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#81A1C1")).
		Bold(true),
	File: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#CCCCCC")),
	Info: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9")),
}
