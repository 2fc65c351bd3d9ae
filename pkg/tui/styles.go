package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorError    = lipgloss.Color("196") // bright red
	colorRunning  = lipgloss.Color("76")  // green
	colorSelected = lipgloss.Color("39")  // blue
	colorMuted    = lipgloss.Color("242") // gray
	colorWhite    = lipgloss.Color("15")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	buttonStyle = lipgloss.NewStyle().
			Width(24).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Foreground(colorWhite)

	selectedButtonStyle = buttonStyle.
				BorderForeground(colorSelected).
				Foreground(colorSelected).
				Bold(true)

	stopButtonStyle = buttonStyle.
			BorderForeground(colorError).
			Foreground(colorError).
			Bold(true)

	runningStyle = lipgloss.NewStyle().
			Foreground(colorRunning).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
