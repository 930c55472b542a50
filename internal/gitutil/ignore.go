// Package gitutil provides gitignore-aware filtering for directory walks.
package gitutil

import (
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// fileReader defines the single filesystem operation needed to load ignore rules.
type fileReader interface {
	ReadFile(path string) ([]byte, error)
}

// Matcher reports whether a path should be hidden from directory listings.
type Matcher interface {
	ShouldIgnore(relativePath string) bool
}

// IgnoreMatcher implements gitignore pattern matching using go-git's matcher.
type IgnoreMatcher struct {
	matcher gitignore.Matcher
}

// NewIgnoreMatcher loads .gitignore from root and builds a matcher from its
// patterns. A missing or unreadable .gitignore yields a matcher that never
// ignores anything.
func NewIgnoreMatcher(root string, fs fileReader) *IgnoreMatcher {
	ignorePath := filepath.Join(root, ".gitignore")

	content, err := fs.ReadFile(ignorePath)
	if err != nil {
		return &IgnoreMatcher{matcher: nil}
	}

	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if pattern := gitignore.ParsePattern(line, nil); pattern != nil {
			patterns = append(patterns, pattern)
		}
	}

	return &IgnoreMatcher{matcher: gitignore.NewMatcher(patterns)}
}

// ShouldIgnore checks if a relative path matches any loaded pattern.
// Returns false when no .gitignore was loaded.
func (m *IgnoreMatcher) ShouldIgnore(relativePath string) bool {
	if m.matcher == nil {
		return false
	}
	return m.matcher.Match(splitPath(relativePath), false)
}

// splitPath splits a path into segments for gitignore matching,
// normalizing separators and dropping empty and "." segments.
func splitPath(path string) []string {
	if path == "" {
		return []string{}
	}

	parts := strings.Split(filepath.ToSlash(path), "/")
	var segments []string
	for _, part := range parts {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}

// NoOpMatcher never ignores any path. Used when ignore loading fails or is
// disabled.
type NoOpMatcher struct{}

// ShouldIgnore always returns false.
func (NoOpMatcher) ShouldIgnore(relativePath string) bool { return false }
