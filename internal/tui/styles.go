package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("39")  // cyan
	secondaryColor = lipgloss.Color("243") // gray
	successColor   = lipgloss.Color("78")  // green

	// Title
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	// List items
	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(primaryColor).
				Bold(true)

	// Active layout indicator
	activeIndicator = lipgloss.NewStyle().
			Foreground(successColor).
			SetString("●")

	inactiveIndicator = lipgloss.NewStyle().
				Foreground(secondaryColor).
				SetString(" ")

	helpStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	filterPromptStyle = lipgloss.NewStyle().
				Foreground(primaryColor)
)
