package paste

import (
	"strings"
	"testing"
)

func newTestClassifier() *Classifier {
	return NewClassifier(3, 200)
}

func TestClassify(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name      string
		text      string
		wantPaste bool
		wantLines int
		wantChars int
	}{
		{"empty text", "", false, 0, 0},
		{"short command", "short", false, 1, 5},
		{"two lines", "a\nb", false, 2, 3},
		{"three lines is paste", "a\nb\nc", true, 3, 5},
		{"many lines", "1\n2\n3\n4\n5", true, 5, 9},
		{"200 chars single line is paste", strings.Repeat("x", 200), true, 1, 200},
		{"199 chars single line is not", strings.Repeat("x", 199), false, 1, 199},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isPaste, stats := c.Classify(tt.text)
			if isPaste != tt.wantPaste {
				t.Errorf("Classify(%q) paste = %v, want %v", tt.text, isPaste, tt.wantPaste)
			}
			if stats.Lines != tt.wantLines {
				t.Errorf("lines = %d, want %d", stats.Lines, tt.wantLines)
			}
			if stats.Chars != tt.wantChars {
				t.Errorf("chars = %d, want %d", stats.Chars, tt.wantChars)
			}
		})
	}
}

func TestClassify_StatsIncludeSize(t *testing.T) {
	c := newTestClassifier()

	_, stats := c.Classify("hello")
	if stats.Size != "5.0B" {
		t.Errorf("size = %q, want %q", stats.Size, "5.0B")
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxLines int
		want     string
	}{
		{"under limit returned verbatim", "a\nb", 3, "a\nb"},
		{"exactly at limit", "a\nb\nc", 3, "a\nb\nc"},
		{"truncated with marker", "a\nb\nc\nd\ne", 3, "a\nb\nc\n... (2 more lines)"},
		{"long lines kept whole", strings.Repeat("x", 500) + "\nb\nc\nd", 2, strings.Repeat("x", 500) + "\nb\n... (2 more lines)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.text, tt.maxLines); got != tt.want {
				t.Errorf("Preview = %q, want %q", got, tt.want)
			}
		})
	}
}
