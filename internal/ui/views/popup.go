package views

import (
	"fmt"
	"strings"

	"plexiterm/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderChoicePopup renders the pending choice menu (e.g. the paste-action
// prompt) as a bordered popup.
func RenderChoicePopup(s models.State) string {
	if s.PendingChoice == nil || len(s.PendingChoice.Options) == 0 {
		return ""
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render(s.PendingChoice.Prompt))
	lines = append(lines, "")

	for i, option := range s.PendingChoice.Options {
		if i == s.ChoiceIndex {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Render(fmt.Sprintf("▸ %s", option)))
		} else {
			lines = append(lines, fmt.Sprintf("  %s", option))
		}
	}

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Faint(true).Render("↑/↓: Navigate  Enter: Select  Esc: Cancel"))

	content := strings.Join(lines, "\n")
	return PopupBoxStyle.Render(content)
}
