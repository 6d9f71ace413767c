package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	header   lipgloss.Style
	tagline  lipgloss.Style
	section  lipgloss.Style
	anchor   lipgloss.Style
	selected lipgloss.Style
	control  lipgloss.Style
	status   lipgloss.Style
	errline  lipgloss.Style
	hint     lipgloss.Style
	card     lipgloss.Style
	cardhead lipgloss.Style
}

func newStyles(accent string) styles {
	ac := lipgloss.Color(accent)
	return styles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(ac),
		tagline:  lipgloss.NewStyle().Italic(true).Faint(true),
		section:  lipgloss.NewStyle().Bold(true),
		anchor:   lipgloss.NewStyle().Foreground(ac),
		selected: lipgloss.NewStyle().Foreground(ac).Bold(true),
		control:  lipgloss.NewStyle(),
		status:   lipgloss.NewStyle().Faint(true),
		errline:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		hint:     lipgloss.NewStyle().Faint(true),
		card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		cardhead: lipgloss.NewStyle().Bold(true).Foreground(ac),
	}
}
