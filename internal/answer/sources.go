package answer

import (
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Source is one web citation attached to an answer.
type Source struct {
	Name   string
	Domain string
}

// webResult mirrors the wire shape of one entry in a search-results step.
type webResult struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

// ExtractSources collects web citations from the first search-results step,
// if any. Malformed entries are skipped; sources are a garnish, never a
// reason to fail an otherwise good answer.
func ExtractSources(steps []Step) []Source {
	for _, step := range steps {
		if step.StepType != StepTypeSearchResults {
			continue
		}
		content, ok := step.Content.(map[string]any)
		if !ok {
			return nil
		}
		raw, ok := content["web_results"]
		if !ok {
			return nil
		}

		var results []webResult
		if err := mapstructure.Decode(raw, &results); err != nil {
			return nil
		}

		sources := make([]Source, 0, len(results))
		for _, r := range results {
			if r.Name == "" && r.URL == "" {
				continue
			}
			sources = append(sources, Source{Name: r.Name, Domain: domainOf(r.URL)})
		}
		return sources
	}
	return nil
}

// domainOf reduces a URL to its host: the part after the scheme separator,
// up to the first slash.
func domainOf(url string) string {
	rest := url
	if idx := strings.Index(rest, "//"); idx >= 0 {
		rest = rest[idx+2:]
	}
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		rest = rest[:idx]
	}
	return rest
}
