package tui

import "github.com/charmbracelet/lipgloss"

// theme colors the board: attacks red, the slider yellow, blockers aqua.
type theme struct {
	Fg, Gray    lipgloss.Color
	Red, Yellow lipgloss.Color
	Aqua, Blue  lipgloss.Color
	Orange      lipgloss.Color
}

func newTheme() theme {
	// Gruvbox Dark
	return theme{
		Fg:     lipgloss.Color("#ebdbb2"),
		Gray:   lipgloss.Color("#928374"),
		Red:    lipgloss.Color("#fb4934"),
		Yellow: lipgloss.Color("#fabd2f"),
		Aqua:   lipgloss.Color("#8ec07c"),
		Blue:   lipgloss.Color("#83a598"),
		Orange: lipgloss.Color("#fe8019"),
	}
}
