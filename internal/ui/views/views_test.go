package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"plexiterm/internal/ui/models"
)

type stubRenderer struct{}

func (stubRenderer) Render(content string, width int) (string, error) {
	return "[md]" + content, nil
}

func TestRenderChat_EmptyShowsHint(t *testing.T) {
	result := RenderChat(models.State{}, stubRenderer{})
	assert.Contains(t, result, "@add")
}

func TestFormatChatContent_RolesStyledDistinctly(t *testing.T) {
	messages := []models.Message{
		{Role: "user", Content: "question"},
		{Role: "assistant", Content: "answer"},
		{Role: "warning", Content: "careful"},
	}

	content := FormatChatContent(messages, 80, stubRenderer{})

	assert.Contains(t, content, "You: question")
	assert.Contains(t, content, "[md]answer")
	assert.Contains(t, content, "careful")
}

func TestRenderChoicePopup(t *testing.T) {
	state := models.State{
		PendingChoice: &models.ChoiceRequest{
			Prompt:  "Paste detected (3 lines)",
			Options: []string{"Add to context", "Send as question", "Discard"},
		},
		ChoiceIndex: 1,
	}

	popup := RenderChoicePopup(state)

	assert.Contains(t, popup, "Paste detected")
	assert.Contains(t, popup, "▸ Send as question")
	assert.Contains(t, popup, "Discard")
}

func TestRenderChoicePopup_NothingPending(t *testing.T) {
	assert.Empty(t, RenderChoicePopup(models.State{}))
}

func TestRenderStatus_ShowsModelName(t *testing.T) {
	state := models.State{CurrentModel: "gemini-2.0-flash"}
	result := RenderStatus(state)

	assert.Contains(t, result, "Ready")
	assert.Contains(t, result, "gemini-2.0-flash")
}

func TestRenderStatus_ThinkingAnimatesDots(t *testing.T) {
	state := models.State{StatusPhase: "thinking", DotCount: 2}
	result := RenderStatus(state)

	assert.True(t, strings.Contains(result, "Searching.."))
}
