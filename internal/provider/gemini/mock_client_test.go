package gemini

import (
	"context"
	"errors"
	"iter"

	"google.golang.org/genai"
)

// MockGeminiClient is a mock implementation of GeminiClient for testing.
type MockGeminiClient struct {
	GenerateContentFunc       func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateContentStreamFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]
	ListModelsFunc            func(ctx context.Context) ([]ModelInfo, error)
}

// GenerateContent calls the mock function if set, otherwise returns an error.
func (m *MockGeminiClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, model, contents, config)
	}
	return nil, errors.New("GenerateContentFunc not set")
}

// GenerateContentStream calls the mock function if set, otherwise yields an error.
func (m *MockGeminiClient) GenerateContentStream(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error] {
	if m.GenerateContentStreamFunc != nil {
		return m.GenerateContentStreamFunc(ctx, model, contents, config)
	}
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		yield(nil, errors.New("GenerateContentStreamFunc not set"))
	}
}

// ListModels calls the mock function if set, otherwise returns an error.
func (m *MockGeminiClient) ListModels(ctx context.Context) ([]ModelInfo, error) {
	if m.ListModelsFunc != nil {
		return m.ListModelsFunc(ctx)
	}
	return nil, errors.New("ListModelsFunc not set")
}

// textResponse builds a minimal text-only SDK response.
func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: text}},
				},
			},
		},
	}
}

// groundedResponse builds a text response carrying web grounding chunks.
func groundedResponse(text string, chunks ...*genai.GroundingChunkWeb) *genai.GenerateContentResponse {
	resp := textResponse(text)
	grounding := &genai.GroundingMetadata{}
	for _, web := range chunks {
		grounding.GroundingChunks = append(grounding.GroundingChunks, &genai.GroundingChunk{Web: web})
	}
	resp.Candidates[0].GroundingMetadata = grounding
	return resp
}
