// Package models defines the backend-agnostic search provider contract.
package models

import (
	"context"

	"plexiterm/internal/answer"
)

// Provider defines the interface for AI search backends.
type Provider interface {
	// Search sends a composed query and returns the decoded response
	// payload. The payload may be any of the recognized shapes; callers
	// hand it to the answer package for extraction.
	Search(ctx context.Context, query string, opts QueryOptions) (answer.Payload, error)

	// SearchStream sends a composed query and returns a stream of
	// incremental chunks. The final chunk carries the complete step
	// sequence for answer extraction.
	SearchStream(ctx context.Context, query string, opts QueryOptions) (ResponseStream, error)

	// SetModel changes the active model at runtime.
	// Returns an error if the model is invalid.
	SetModel(model string) error

	// GetModel returns the currently active model name.
	GetModel() string
}

// QueryOptions carries the per-query knobs forwarded to the backend.
type QueryOptions struct {
	// Mode selects the query depth ("auto", "pro", "reasoning", "deep research").
	Mode string

	// Model is the backend model name; empty means the provider's current model.
	Model string

	// Sources lists the evidence sources to consult ("web", "scholar", "social").
	Sources []string

	// Stream requests incremental delivery.
	Stream bool

	// Incognito asks the backend not to retain the query in any account history.
	Incognito bool
}

// ResponseStream provides access to streaming response chunks.
type ResponseStream interface {
	// Next returns the next chunk, or io.EOF when done
	Next() (*StreamChunk, error)

	// Close releases resources
	Close() error
}

// StreamChunk is a single increment of a streaming response. Chunks arrive
// in order; Delta segments concatenate into the display text. The chunk with
// Done set carries the authoritative step sequence.
type StreamChunk struct {
	// Delta is the incremental answer text
	Delta string

	// Steps is the complete step sequence, present only on the final chunk
	Steps []answer.Step

	// Done indicates this is the final chunk
	Done bool
}
