package ui

import "github.com/charmbracelet/lipgloss"

type theme struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	muted    lipgloss.Style
	help     lipgloss.Style
	accent   lipgloss.Style

	splitDone    lipgloss.Style
	splitCurrent lipgloss.Style
	splitPending lipgloss.Style

	ahead  lipgloss.Style
	even   lipgloss.Style
	behind lipgloss.Style

	clockIdle    lipgloss.Style
	clockRunning lipgloss.Style
	clockPaused  lipgloss.Style
	clockEnded   lipgloss.Style
}

func newTheme() theme {
	return theme{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9FD3FF")),
		subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8FA0B3")),
		muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E7B88")),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E7B88")),
		accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C792EA")),
		splitDone: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#63C17A")),
		splitCurrent: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E7B65A")),
		splitPending: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E7B88")),
		ahead: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#63C17A")),
		even: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E7B65A")),
		behind: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E06B75")),
		clockIdle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#D7DBE0")),
		clockRunning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#63C17A")),
		clockPaused: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E7B65A")),
		clockEnded: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#65B5FF")),
	}
}
