package gemini

import (
	"fmt"
	"slices"

	"google.golang.org/genai"

	"plexiterm/internal/answer"
	"plexiterm/internal/provider/models"
)

// systemInstruction frames every query. The answer is extracted from plain
// model text, so the instruction only sets register, not output format.
const systemInstruction = "You are a research assistant. Answer the user's question directly and " +
	"concisely in Markdown. When file or pasted context is provided, ground " +
	"your answer in that context."

// toGeminiContents wraps a composed query in Gemini Content format.
func toGeminiContents(query string) []*genai.Content {
	return []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				genai.NewPartFromText(query),
			},
		},
	}
}

// toGeminiConfig builds the generation config for one query. Consulting the
// web source turns on Google Search grounding, which is what produces the
// search-results step in the response.
func toGeminiConfig(opts models.QueryOptions) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(systemInstruction)},
		},
		SafetySettings: defaultSafetySettings(),
	}

	if slices.Contains(opts.Sources, "web") {
		config.Tools = []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		}
	}

	return config
}

// defaultSafetySettings returns safety settings with blocking off for all categories.
func defaultSafetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{
			Category:  genai.HarmCategoryHateSpeech,
			Threshold: genai.HarmBlockThresholdOff,
		},
		{
			Category:  genai.HarmCategoryDangerousContent,
			Threshold: genai.HarmBlockThresholdOff,
		},
		{
			Category:  genai.HarmCategoryHarassment,
			Threshold: genai.HarmBlockThresholdOff,
		},
		{
			Category:  genai.HarmCategorySexuallyExplicit,
			Threshold: genai.HarmBlockThresholdOff,
		},
	}
}

// fromGeminiResponse converts a Gemini response into the step-sequence
// payload the answer package extracts from.
func fromGeminiResponse(resp *genai.GenerateContentResponse) (answer.Payload, error) {
	if len(resp.Candidates) == 0 {
		return answer.Payload{}, &models.ProviderError{
			Code:    models.ErrorCodeInvalidRequest,
			Message: "no candidates in response",
		}
	}

	candidate := resp.Candidates[0]

	if candidate.FinishReason == genai.FinishReasonSafety {
		return answer.Payload{}, &models.ProviderError{
			Code:      models.ErrorCodeContentBlocked,
			Message:   "content blocked by safety filters",
			Retryable: false,
		}
	}

	text := candidateText(candidate)
	return answer.StepsPayload(buildSteps(text, candidate.GroundingMetadata)), nil
}

// deltaFromResponse pulls the incremental text and any grounding metadata
// from one streaming chunk.
func deltaFromResponse(resp *genai.GenerateContentResponse) (string, *genai.GroundingMetadata) {
	if len(resp.Candidates) == 0 {
		return "", nil
	}
	candidate := resp.Candidates[0]
	return candidateText(candidate), candidate.GroundingMetadata
}

// candidateText concatenates the text parts of a candidate.
func candidateText(candidate *genai.Candidate) string {
	if candidate.Content == nil {
		return ""
	}
	var text string
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text
}

// buildSteps assembles the step sequence for an answer: a search-results
// step when the response was grounded, then the final answer step. Steps are
// built as their wire shape and decoded so extraction sees exactly what a
// remote step sequence would look like.
func buildSteps(text string, grounding *genai.GroundingMetadata) []answer.Step {
	var raw []any

	if results := groundingWebResults(grounding); len(results) > 0 {
		raw = append(raw, map[string]any{
			"step_type": answer.StepTypeSearchResults,
			"content":   map[string]any{"web_results": results},
		})
	}

	raw = append(raw, map[string]any{
		"step_type": answer.StepTypeFinal,
		"content":   map[string]any{"answer": text},
	})

	steps := make([]answer.Step, 0, len(raw))
	for _, v := range raw {
		steps = append(steps, answer.DecodeStep(v))
	}
	return steps
}

// groundingWebResults converts grounding chunks to web-result records.
func groundingWebResults(grounding *genai.GroundingMetadata) []any {
	if grounding == nil {
		return nil
	}
	var results []any
	for _, chunk := range grounding.GroundingChunks {
		if chunk.Web == nil {
			continue
		}
		results = append(results, map[string]any{
			"name": chunk.Web.Title,
			"url":  chunk.Web.URI,
		})
	}
	return results
}

// mapGeminiError maps Gemini API errors to provider errors.
func mapGeminiError(err error) error {
	if err == nil {
		return nil
	}

	if apiErr, ok := err.(*genai.APIError); ok {
		switch apiErr.Code {
		case 401, 403:
			return &models.ProviderError{
				Code:       models.ErrorCodeAuth,
				Message:    "authentication failed",
				Underlying: err,
				Retryable:  false,
			}
		case 429:
			return &models.ProviderError{
				Code:       models.ErrorCodeRateLimit,
				Message:    "rate limit exceeded",
				Underlying: err,
				Retryable:  true,
			}
		case 400:
			return &models.ProviderError{
				Code:       models.ErrorCodeInvalidRequest,
				Message:    fmt.Sprintf("invalid request: %s", apiErr.Message),
				Underlying: err,
				Retryable:  false,
			}
		case 500, 502, 503, 504:
			return &models.ProviderError{
				Code:       models.ErrorCodeUnavailable,
				Message:    "service unavailable",
				Underlying: err,
				Retryable:  true,
			}
		default:
			return &models.ProviderError{
				Code:       models.ErrorCodeNetwork,
				Message:    fmt.Sprintf("API error: %s", apiErr.Message),
				Underlying: err,
				Retryable:  true,
			}
		}
	}

	return &models.ProviderError{
		Code:       models.ErrorCodeNetwork,
		Message:    "network error",
		Underlying: err,
		Retryable:  true,
	}
}
