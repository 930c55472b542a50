package answer

import (
	"encoding/json"
	"fmt"
)

// User-facing error strings produced when a response cannot be turned into
// an answer. These are rendered, not returned as errors: a malformed response
// is a displayable outcome of a query, not a failure of the program.
const (
	msgNoResponse   = "Error: no response from the service"
	msgEmptySteps   = "Error: response contained an empty steps list"
	msgParseFailure = "Error: parsing response steps: %v"
	msgUnknownShape = "Error: unrecognized response format"
)

// ExtractAnswer turns a decoded response payload into displayable answer
// text. It is deliberately tolerant: every recognized shape yields text, and
// any panic while walking a malformed payload is recovered into an error
// message rather than crashing the session.
func ExtractAnswer(p Payload) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf(msgParseFailure, r)
		}
	}()

	switch p.Kind {
	case KindText:
		return p.Text
	case KindMapping:
		return stringify(p.Mapping)
	case KindSteps:
		return extractFromSteps(p.Steps)
	default:
		return msgUnknownShape
	}
}

// NoResponseMessage is the answer text for a response with no usable payload
// at all. Kept distinct from the empty-steps case so the two failure modes
// stay tellable apart.
func NoResponseMessage() string {
	return msgNoResponse
}

// extractFromSteps walks a step sequence. The step whose type marks it as
// final carries the answer; without one, the last step's content is the best
// available text and is returned as-is rather than treated as an error.
func extractFromSteps(steps []Step) string {
	if len(steps) == 0 {
		return msgEmptySteps
	}

	for _, step := range steps {
		if step.StepType != StepTypeFinal {
			continue
		}
		if content, ok := step.Content.(map[string]any); ok {
			if nested, ok := content["answer"]; ok {
				return extractNestedAnswer(nested)
			}
			return stringify(content)
		}
		return stringify(step.Content)
	}

	last := steps[len(steps)-1]
	if last.HasContent {
		return stringify(last.Content)
	}
	return stringify(last.Raw)
}

// extractNestedAnswer unwraps the answer field of a final step. The service
// sometimes double-encodes it: the field may be a mapping, or a string that
// itself holds a JSON document with its own answer field.
func extractNestedAnswer(v any) string {
	switch answer := v.(type) {
	case string:
		var inner map[string]any
		if err := json.Unmarshal([]byte(answer), &inner); err != nil {
			return answer
		}
		if text, ok := inner["answer"]; ok {
			return stringify(text)
		}
		return stringify(inner)
	case map[string]any:
		if text, ok := answer["answer"]; ok {
			return stringify(text)
		}
		return stringify(answer)
	default:
		return stringify(v)
	}
}

// stringify renders an arbitrary decoded value as text. Strings pass through
// untouched; structured values are rendered as JSON, which keeps mapping
// output deterministic.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(encoded)
}
