// Package services provides rendering helpers for the UI layer.
package services

import "github.com/charmbracelet/glamour"

// MarkdownRenderer renders markdown content to styled terminal text.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer implements MarkdownRenderer using glamour.
type GlamourRenderer struct{}

// Render renders content with glamour's automatic terminal style.
func (GlamourRenderer) Render(content string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

// RenderMarkdown renders content at the given width, defaulting a
// non-positive width to 80 columns.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) (string, error) {
	if width <= 0 {
		width = 80
	}
	return renderer.Render(content, width)
}
