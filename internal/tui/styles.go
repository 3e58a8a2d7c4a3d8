package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("69")
	colorMuted  = lipgloss.Color("241")
	colorError  = lipgloss.Color("196")
	colorDone   = lipgloss.Color("10")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	cursorStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			SetString("▶")

	doneMarkStyle = lipgloss.NewStyle().
			Foreground(colorDone).
			SetString("✔")

	openMarkStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			SetString("○")

	completedTitleStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Strikethrough(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Bold(true).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorError).
				Padding(0, 1)

	suggestionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	suggestionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	appStyle = lipgloss.NewStyle().Padding(1, 2)
)
