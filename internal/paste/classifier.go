// Package paste decides whether raw terminal input is a deliberate
// multi-line paste or an ordinary command, and produces previews of
// pasted text.
package paste

import (
	"fmt"
	"strings"

	"plexiterm/internal/fsutil"
)

// Stats describes a classified piece of input.
type Stats struct {
	Lines int    // number of lines (count of '\n' plus one)
	Chars int    // total character count
	Size  string // human-readable size, e.g. "1.5KB"
}

// Classifier applies the paste heuristic: input is a paste when it has at
// least LineThreshold lines or at least CharThreshold characters. The
// heuristic intentionally accepts false positives (a long single-line
// command) in favour of never missing an actual paste.
type Classifier struct {
	lineThreshold int
	charThreshold int
}

// NewClassifier creates a Classifier with the given thresholds.
func NewClassifier(lineThreshold, charThreshold int) *Classifier {
	return &Classifier{
		lineThreshold: lineThreshold,
		charThreshold: charThreshold,
	}
}

// Classify reports whether text is a paste, along with its statistics.
// Empty text is never a paste and yields zero stats.
func (c *Classifier) Classify(text string) (bool, Stats) {
	if text == "" {
		return false, Stats{}
	}

	lines := strings.Count(text, "\n") + 1
	chars := len(text)

	stats := Stats{
		Lines: lines,
		Chars: chars,
		Size:  fsutil.FormatSize(int64(chars)),
	}
	return lines >= c.lineThreshold || chars >= c.charThreshold, stats
}

// Preview returns the first maxLines lines of text verbatim, followed by a
// "... (N more lines)" marker when the text was truncated. Lines are never
// shortened, only dropped past maxLines.
func Preview(text string, maxLines int) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= maxLines {
		return text
	}

	remaining := len(lines) - maxLines
	return strings.Join(lines[:maxLines], "\n") + fmt.Sprintf("\n... (%d more lines)", remaining)
}
