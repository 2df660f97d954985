package tasks

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	index  lipgloss.Style
	task   lipgloss.Style
	empty  lipgloss.Style
	list   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		index:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		task:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:  lipgloss.NewStyle().Faint(true),
		list:   lipgloss.NewStyle().MarginTop(1),
	}
}
