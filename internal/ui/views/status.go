package views

import (
	"fmt"
	"strings"

	"plexiterm/internal/ui/models"
)

// RenderStatus renders the status bar
func RenderStatus(s models.State) string {
	var icon string
	style := StatusDefaultStyle

	switch s.StatusPhase {
	case "executing":
		icon = s.Spinner.View()
		style = StatusExecutingStyle
	case "done":
		icon = "✔"
		style = StatusDoneStyle
	case "thinking":
		icon = s.Spinner.View()
		style = StatusThinkingStyle
		// Animate the dots
		dots := strings.Repeat(".", s.DotCount)
		return style.Render(fmt.Sprintf("%s Searching%s", icon, dots))
	}

	status := "Ready"
	if s.StatusMessage != "" {
		status = fmt.Sprintf("%s %s", icon, s.StatusMessage)
	} else if s.StatusPhase != "ready" && s.StatusPhase != "" {
		status = icon
	}

	leftSide := style.Render(status)

	rightSide := ""
	if s.CurrentModel != "" {
		rightSide = StatusDefaultStyle.Render(s.CurrentModel)
	}

	if rightSide != "" {
		return fmt.Sprintf("%s  %s", leftSide, rightSide)
	}
	return leftSide
}
