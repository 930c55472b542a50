// Package gemini implements the search provider on top of Google Gemini,
// using search grounding for web-sourced answers.
package gemini

import (
	"context"
	"io"
	"iter"
	"strings"
	"sync"

	"google.golang.org/genai"

	"plexiterm/internal/answer"
	"plexiterm/internal/provider/models"
)

// GeminiProvider implements the Provider interface for Google Gemini.
type GeminiProvider struct {
	client    GeminiClient
	modelName string
	mu        sync.RWMutex
}

// New creates a new GeminiProvider with the specified client and model.
func New(client GeminiClient, modelName string) *GeminiProvider {
	return &GeminiProvider{
		client:    client,
		modelName: modelName,
	}
}

// Search sends a composed query to the Gemini API and returns the decoded
// response payload: a search-results step when grounding was used, followed
// by a final step carrying the answer text.
func (p *GeminiProvider) Search(ctx context.Context, query string, opts models.QueryOptions) (answer.Payload, error) {
	model := p.resolveModel(opts)
	contents := toGeminiContents(query)
	config := toGeminiConfig(opts)

	resp, err := p.client.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return answer.Payload{}, mapGeminiError(err)
	}

	return fromGeminiResponse(resp)
}

// SearchStream sends a composed query and yields incremental chunks. Text
// deltas arrive in order; the final chunk carries the assembled step
// sequence, including grounded sources, for answer extraction.
func (p *GeminiProvider) SearchStream(ctx context.Context, query string, opts models.QueryOptions) (models.ResponseStream, error) {
	model := p.resolveModel(opts)
	contents := toGeminiContents(query)
	config := toGeminiConfig(opts)

	seq := p.client.GenerateContentStream(ctx, model, contents, config)
	next, stop := iter.Pull2(seq)
	return &geminiStream{next: next, stop: stop}, nil
}

// SetModel changes the active model at runtime.
func (p *GeminiProvider) SetModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return models.ErrInvalidModel
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.modelName = model
	return nil
}

// GetModel returns the currently active model name.
func (p *GeminiProvider) GetModel() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modelName
}

// resolveModel picks the per-query model override, falling back to the
// provider's current model.
func (p *GeminiProvider) resolveModel(opts models.QueryOptions) string {
	if opts.Model != "" {
		return opts.Model
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modelName
}

// geminiStream adapts the SDK's response iterator to the ResponseStream
// contract. It accumulates text and grounding across SDK chunks so the
// final chunk can carry the complete step sequence.
type geminiStream struct {
	next func() (*genai.GenerateContentResponse, error, bool)
	stop func()

	text      strings.Builder
	grounding *genai.GroundingMetadata
	finished  bool
}

// Next returns the next chunk, or io.EOF when the stream is exhausted.
func (s *geminiStream) Next() (*models.StreamChunk, error) {
	if s.finished {
		return nil, io.EOF
	}

	resp, err, ok := s.next()
	if !ok {
		s.finished = true
		return s.finalChunk(), nil
	}
	if err != nil {
		s.finished = true
		return nil, mapGeminiError(err)
	}

	delta, grounding := deltaFromResponse(resp)
	s.text.WriteString(delta)
	if grounding != nil {
		s.grounding = grounding
	}

	return &models.StreamChunk{Delta: delta}, nil
}

// finalChunk assembles the authoritative step sequence once the SDK
// iterator is drained.
func (s *geminiStream) finalChunk() *models.StreamChunk {
	return &models.StreamChunk{
		Steps: buildSteps(s.text.String(), s.grounding),
		Done:  true,
	}
}

// Close releases the underlying iterator.
func (s *geminiStream) Close() error {
	s.stop()
	s.finished = true
	return nil
}
