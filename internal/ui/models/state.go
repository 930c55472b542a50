// Package models holds the UI state shared between the Bubble Tea model and
// the view functions.
package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Message is one entry in the chat transcript.
type Message struct {
	Role    string // "user", "assistant", "warning", "system"
	Content string
}

// ChoiceRequest is a pending popup asking the user to pick one option.
type ChoiceRequest struct {
	Prompt  string
	Options []string
}

// State is the complete UI state rendered by the views.
type State struct {
	Input    textinput.Model
	Viewport viewport.Model
	Spinner  spinner.Model
	Messages []Message

	Width  int
	Height int

	// Input gating: the loop requests input before the user may submit.
	CanSubmit   bool
	PromptLabel string

	// Status bar
	StatusPhase   string
	StatusMessage string
	DotCount      int
	CurrentModel  string

	// Choice popup
	PendingChoice *ChoiceRequest
	ChoiceIndex   int
}
