// Package boundary enforces the home-directory security boundary.
// Every filesystem-touching operation must pass its paths through a
// Boundary before acting on them.
package boundary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Boundary validates that resolved paths stay inside a fixed root directory.
// It holds no mutable state and is safe to share.
type Boundary struct {
	root string
}

// CanonicaliseRoot canonicalises a boundary root path by making it absolute
// and resolving symlinks. Returns an error if the path doesn't exist or
// isn't a directory.
func CanonicaliseRoot(root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", &RootError{Root: root, Cause: err}
	}

	resolved, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", &RootError{Root: absRoot, Cause: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &RootError{Root: resolved, Cause: err}
	}
	if !info.IsDir() {
		return "", &RootError{Root: resolved, Cause: fmt.Errorf("%w: %s", ErrNotADirectory, resolved)}
	}
	return resolved, nil
}

// New creates a Boundary rooted at the given directory.
// The root is canonicalised once at construction.
func New(root string) (*Boundary, error) {
	canonical, err := CanonicaliseRoot(root)
	if err != nil {
		return nil, err
	}
	return &Boundary{root: canonical}, nil
}

// Root returns the canonical boundary root.
func (b *Boundary) Root() string {
	return b.root
}

// Resolve canonicalises a path (absolute form, symlinks followed, ".."
// eliminated) and validates it lies within the boundary. Any resolution
// failure is an error: the boundary fails closed, never open.
func (b *Boundary) Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &ResolveError{Path: path, Cause: err}
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// Broken symlink, permission error, or missing component.
		return "", &ResolveError{Path: abs, Cause: err}
	}

	if !b.contains(resolved) {
		return "", ErrOutsideBoundary
	}
	return resolved, nil
}

// IsAllowed reports whether the canonical resolution of path is the boundary
// root itself or a descendant of it. Resolution failures report false.
func (b *Boundary) IsAllowed(path string) bool {
	_, err := b.Resolve(path)
	return err == nil
}

// Rel returns the canonical path relative to the boundary root.
// Returns an error if the path is outside the boundary.
func (b *Boundary) Rel(path string) (string, error) {
	resolved, err := b.Resolve(path)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(b.root, resolved)
	if err != nil {
		return "", ErrOutsideBoundary
	}
	return filepath.ToSlash(rel), nil
}

// contains checks canonical containment: equal to the root or strictly below it.
func (b *Boundary) contains(canonical string) bool {
	return canonical == b.root || strings.HasPrefix(canonical, b.root+string(filepath.Separator))
}
