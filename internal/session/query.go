package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"plexiterm/internal/answer"
	"plexiterm/internal/provider/models"
)

// handleQuery composes the outbound query from the current context and the
// question, sends it to the provider, and renders the answer and sources.
func (s *Session) handleQuery(ctx context.Context, question string) error {
	files := s.store.Files()
	pastes := s.store.Pastes()

	if n := len(files) + len(pastes); n > 0 {
		s.ui.WriteStatus("thinking", fmt.Sprintf("Searching with %d context item(s)", n))
	} else {
		s.ui.WriteStatus("thinking", "Searching")
	}
	defer s.ui.WriteStatus("", "")

	composed, warnings := s.composer.Compose(files, pastes, question)
	for _, w := range warnings {
		s.ui.WriteWarning(fmt.Sprintf("Skipped %s: %v", w.DisplayPath, w.Cause))
	}

	opts := models.QueryOptions{
		Mode:      s.cfg.Query.Mode,
		Model:     s.cfg.Query.Model,
		Sources:   s.cfg.Query.Sources,
		Stream:    s.cfg.Query.Stream,
		Incognito: s.cfg.Query.Incognito,
	}

	payload, err := s.search(ctx, composed, opts)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.ui.WriteWarning(providerErrorMessage(err))
		return nil
	}

	s.renderAnswer(payload)
	return nil
}

// search dispatches to the streaming or single-shot provider call and
// normalises both into a decoded payload.
func (s *Session) search(ctx context.Context, composed string, opts models.QueryOptions) (answer.Payload, error) {
	if !opts.Stream {
		return s.provider.Search(ctx, composed, opts)
	}

	stream, err := s.provider.SearchStream(ctx, composed, opts)
	if err != nil {
		return answer.Payload{}, err
	}
	defer stream.Close()

	// Deltas concatenate in arrival order; the final chunk carries the
	// authoritative step sequence.
	var text strings.Builder
	var steps []answer.Step
	for {
		chunk, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return answer.Payload{}, err
		}
		text.WriteString(chunk.Delta)
		if chunk.Done {
			steps = chunk.Steps
		}
	}

	if len(steps) > 0 {
		return answer.StepsPayload(steps), nil
	}
	// The stream ended without a terminal chunk; fall back to whatever
	// text arrived.
	return answer.DecodePayload(text.String()), nil
}

// renderAnswer shows the sources consulted (when present) followed by the
// extracted answer text.
func (s *Session) renderAnswer(payload answer.Payload) {
	if sources := answer.ExtractSources(payload.Steps); len(sources) > 0 {
		s.ui.WriteMessage(formatSources(sources))
	}

	text := answer.ExtractAnswer(payload)
	if text == "" {
		text = answer.NoResponseMessage()
	}
	s.ui.WriteMessage(text)
}

func formatSources(sources []answer.Source) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sources (%d):\n", len(sources))
	for _, src := range sources {
		name := src.Name
		if name == "" {
			name = src.Domain
		}
		if src.Domain != "" && src.Domain != name {
			fmt.Fprintf(&b, "- %s (%s)\n", name, src.Domain)
			continue
		}
		fmt.Fprintf(&b, "- %s\n", name)
	}
	return strings.TrimRight(b.String(), "\n")
}

// providerErrorMessage renders a provider failure for the transcript,
// including the retry hint when the backend supplied one.
func providerErrorMessage(err error) string {
	var providerErr *models.ProviderError
	if !errors.As(err, &providerErr) {
		return fmt.Sprintf("Query failed: %v", err)
	}

	msg := fmt.Sprintf("Query failed: %s", providerErr.Message)
	if providerErr.Retryable {
		if after := models.GetRetryAfter(err); after != nil {
			return fmt.Sprintf("%s (retry in %s)", msg, after)
		}
		return msg + " (retryable)"
	}
	return msg
}
