// Package answer extracts human-readable answers and cited sources from the
// loosely-structured responses returned by the AI service.
package answer

import (
	"github.com/mitchellh/mapstructure"
)

// Kind tags the recognized response payload shapes.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindText              // plain string
	KindMapping           // single mapping
	KindSteps             // ordered sequence of step records
)

// Step is one unit of a structured, possibly multi-stage response
// (e.g. search results, final answer).
type Step struct {
	StepType   string
	Content    any
	HasContent bool
	Raw        any // the original value, kept for fallback rendering
}

// Payload is a tagged union over the recognized response shapes. Exactly one
// of Text, Mapping, Steps is meaningful, selected by Kind.
type Payload struct {
	Kind    Kind
	Text    string
	Mapping map[string]any
	Steps   []Step
}

// Step type markers used by the remote service.
const (
	StepTypeFinal         = "FINAL"
	StepTypeSearchResults = "SEARCH_RESULTS"
)

// DecodePayload classifies a raw top-level response value into a Payload.
// Each shape has its own decoder; anything else lands in KindUnrecognized.
func DecodePayload(v any) Payload {
	switch value := v.(type) {
	case nil:
		return Payload{Kind: KindUnrecognized}
	case string:
		return Payload{Kind: KindText, Text: value}
	case []any:
		return Payload{Kind: KindSteps, Steps: decodeSteps(value)}
	case map[string]any:
		return Payload{Kind: KindMapping, Mapping: value}
	default:
		return Payload{Kind: KindUnrecognized}
	}
}

// StepsPayload wraps an already-assembled step list, as produced by
// streaming accumulation.
func StepsPayload(steps []Step) Payload {
	return Payload{Kind: KindSteps, Steps: steps}
}

// decodeSteps decodes each element of a step sequence. Elements that are not
// step-shaped mappings keep only their raw value for fallback rendering.
func decodeSteps(values []any) []Step {
	steps := make([]Step, 0, len(values))
	for _, v := range values {
		steps = append(steps, DecodeStep(v))
	}
	return steps
}

// stepRecord mirrors the wire shape of one step.
type stepRecord struct {
	StepType string `mapstructure:"step_type"`
	Content  any    `mapstructure:"content"`
}

// DecodeStep decodes a single raw step value.
func DecodeStep(v any) Step {
	m, ok := v.(map[string]any)
	if !ok {
		return Step{Raw: v}
	}

	var record stepRecord
	if err := mapstructure.Decode(m, &record); err != nil {
		return Step{Raw: v}
	}

	_, hasContent := m["content"]
	return Step{
		StepType:   record.StepType,
		Content:    record.Content,
		HasContent: hasContent,
		Raw:        v,
	}
}
