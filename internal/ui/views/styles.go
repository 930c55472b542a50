package views

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorPrimary = lipgloss.Color("205")
	ColorWarning = lipgloss.Color("214")
	ColorError   = lipgloss.Color("196")
	ColorDim     = lipgloss.Color("241")
)

// Message styles
var (
	UserMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("81")).
				Bold(true)

	AssistantMessageStyle = lipgloss.NewStyle()

	WarningMessageStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	SystemMessageStyle = lipgloss.NewStyle().
				Foreground(ColorDim)
)

// Input bar
var InputStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	Padding(0, 1)

// Status bar styles
var (
	StatusDefaultStyle = lipgloss.NewStyle().
				Foreground(ColorDim)

	StatusThinkingStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	StatusExecutingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	StatusDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// Choice popup framing
var PopupBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorPrimary).
	Padding(1, 2)
