package answer

import "testing"

func TestExtractSources(t *testing.T) {
	payload := DecodePayload([]any{
		step("SEARCH_RESULTS", map[string]any{
			"web_results": []any{
				map[string]any{"name": "Go Blog", "url": "https://go.dev/blog/slices"},
				map[string]any{"name": "Wikipedia", "url": "http://en.wikipedia.org/wiki/Go"},
			},
		}),
		step("FINAL", map[string]any{"answer": "done"}),
	})

	sources := ExtractSources(payload.Steps)
	if len(sources) != 2 {
		t.Fatalf("sources = %d, want 2", len(sources))
	}

	want := []Source{
		{Name: "Go Blog", Domain: "go.dev"},
		{Name: "Wikipedia", Domain: "en.wikipedia.org"},
	}
	for i := range want {
		if sources[i] != want[i] {
			t.Errorf("source[%d] = %+v, want %+v", i, sources[i], want[i])
		}
	}
}

func TestExtractSources_NoSearchStep(t *testing.T) {
	payload := DecodePayload([]any{
		step("FINAL", map[string]any{"answer": "done"}),
	})

	if sources := ExtractSources(payload.Steps); sources != nil {
		t.Errorf("sources = %v, want nil", sources)
	}
}

func TestExtractSources_MalformedResultsSkipped(t *testing.T) {
	payload := DecodePayload([]any{
		step("SEARCH_RESULTS", map[string]any{
			"web_results": []any{
				map[string]any{},
				map[string]any{"name": "Valid", "url": "https://example.com/page"},
			},
		}),
	})

	sources := ExtractSources(payload.Steps)
	if len(sources) != 1 {
		t.Fatalf("sources = %d, want 1", len(sources))
	}
	if sources[0].Domain != "example.com" {
		t.Errorf("domain = %q, want example.com", sources[0].Domain)
	}
}

func TestDomainOf(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://go.dev/blog", "go.dev"},
		{"http://example.com", "example.com"},
		{"//cdn.example.com/a/b", "cdn.example.com"},
		{"example.org/path", "example.org"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := domainOf(tt.url); got != tt.want {
			t.Errorf("domainOf(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
