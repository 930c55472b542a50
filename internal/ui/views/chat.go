package views

import (
	"strings"

	"plexiterm/internal/ui/models"
	"plexiterm/internal/ui/services"
)

// RenderChat renders the message history
func RenderChat(s models.State, renderer services.MarkdownRenderer) string {
	if len(s.Messages) == 0 {
		return "Ask a question, add context with @add, or type ls/cd/cat/tree."
	}
	return s.Viewport.View()
}

// FormatChatContent formats the messages for the viewport
func FormatChatContent(messages []models.Message, width int, renderer services.MarkdownRenderer) string {
	var lines []string
	for _, msg := range messages {
		switch msg.Role {
		case "user":
			lines = append(lines, UserMessageStyle.Render("You: "+msg.Content))
		case "warning":
			lines = append(lines, WarningMessageStyle.Render("⚠ "+msg.Content))
		case "system":
			lines = append(lines, SystemMessageStyle.Render(msg.Content))
		default:
			// Render assistant messages as markdown
			rendered, err := services.RenderMarkdown(msg.Content, width, renderer)
			if err != nil {
				lines = append(lines, AssistantMessageStyle.Render(msg.Content))
			} else {
				lines = append(lines, AssistantMessageStyle.Render(rendered))
			}
		}
		lines = append(lines, "") // Add spacing
	}
	return strings.Join(lines, "\n")
}
