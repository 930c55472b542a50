package views

import (
	"plexiterm/internal/ui/models"
	"plexiterm/internal/ui/services"
	"github.com/charmbracelet/lipgloss"
)

// RenderRoot renders the complete UI layout
func RenderRoot(s models.State, renderer services.MarkdownRenderer) string {
	sections := []string{
		RenderChat(s, renderer),
		RenderInput(s),
		RenderStatus(s),
	}

	// Overlay the choice popup if one is pending
	if s.PendingChoice != nil {
		popup := RenderChoicePopup(s)
		return lipgloss.Place(
			s.Width,
			s.Height,
			lipgloss.Center,
			lipgloss.Center,
			popup,
			lipgloss.WithWhitespaceChars(""),
			lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
