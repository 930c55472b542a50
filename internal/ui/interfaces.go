package ui

import "context"

// UserInterface defines the contract for all user interactions.
// It follows a Read/Write pattern for clarity.
//
// Context Usage:
// All blocking methods accept context.Context for cancellation support.
// If the user cancels (Ctrl+C), the context will be cancelled,
// and implementations should return immediately with context.Canceled error.
type UserInterface interface {
	// ReadInput prompts the user for general text input. The prompt is the
	// input-bar label (e.g. the "~"-relative current directory).
	ReadInput(ctx context.Context, prompt string) (string, error)

	// ReadChoice shows a popup with the prompt and options and returns the
	// index of the selected option. Cancelling the popup selects the last
	// option, so callers should place the dismissive choice last.
	ReadChoice(ctx context.Context, prompt string, options []string) (int, error)

	// WriteMessage displays answer or command output text
	WriteMessage(content string)

	// WriteWarning displays a non-fatal warning
	WriteWarning(content string)

	// WriteStatus displays ephemeral status updates (e.g. "Searching...")
	WriteStatus(phase string, message string)

	// SetModel updates the model name shown in the status bar
	SetModel(name string)
}
