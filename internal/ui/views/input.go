package views

import (
	"plexiterm/internal/ui/models"
)

// RenderInput renders the input bar with the current prompt label.
func RenderInput(s models.State) string {
	label := s.PromptLabel
	if label == "" {
		label = ">"
	}
	return InputStyle.Render(SystemMessageStyle.Render(label) + " " + s.Input.View())
}
