// Package query builds the single outbound payload sent to the AI service
// from the current context items plus the user's question.
package query

import (
	"fmt"
	"strings"

	"plexiterm/internal/contextstore"
)

// fileReader defines the read operation needed at composition time.
type fileReader interface {
	ReadFile(path string) ([]byte, error)
}

// Warning records a per-item composition failure. The failed item's block
// is omitted; composition of the remaining blocks continues.
type Warning struct {
	DisplayPath string
	Cause       error
}

// Composer serialises context items and a question into one query string
// with deterministic ordering and unambiguous delimiting between items.
type Composer struct {
	fs fileReader
}

// NewComposer creates a Composer reading file content through fs.
func NewComposer(fs fileReader) *Composer {
	return &Composer{fs: fs}
}

// Compose builds the final query: all file blocks, then all paste blocks,
// each in insertion order, followed by a separator and the question.
//
// File content is read fresh here, not cached from add time: the user may
// edit a file between adding it and asking, and the freshest content must
// be sent. A file that fails to read produces a warning and is omitted;
// it never aborts the rest of the composition.
//
// With no context items the question is returned unmodified.
func (c *Composer) Compose(files []contextstore.FileReference, pastes []contextstore.PasteEntry, question string) (string, []Warning) {
	var blocks []string
	var warnings []Warning

	for _, file := range files {
		content, err := c.fs.ReadFile(file.AbsolutePath)
		if err != nil {
			warnings = append(warnings, Warning{DisplayPath: file.DisplayPath, Cause: err})
			continue
		}
		blocks = append(blocks, fmt.Sprintf("--- File: %s ---\n%s\n", file.DisplayPath, content))
	}

	for _, entry := range pastes {
		blocks = append(blocks, fmt.Sprintf("--- Context: %s (%d lines) ---\n%s\n", entry.ID, entry.LineCount, entry.Content))
	}

	if len(blocks) == 0 {
		return question, warnings
	}

	var b strings.Builder
	b.WriteString(strings.Join(blocks, "\n"))
	b.WriteString("\n--- User Question ---\n")
	b.WriteString(question)
	return b.String(), warnings
}
