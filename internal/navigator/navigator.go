// Package navigator provides boundary-checked filesystem navigation:
// the cd/ls/pwd/cat/tree surface of the interactive loop.
package navigator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"plexiterm/internal/boundary"
)

// fileSystem defines the filesystem operations the navigator needs.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]os.DirEntry, error)
}

// ignoreMatcher reports whether a path should be hidden from tree output.
type ignoreMatcher interface {
	ShouldIgnore(relativePath string) bool
}

// Entry is one row of a directory listing.
type Entry struct {
	Name  string
	IsDir bool
	Size  int64
}

// FileView is the result of reading a file for display.
type FileView struct {
	Name     string
	Content  string
	Language string // fence language for code files, empty otherwise
}

// Navigator tracks the current directory within the boundary and serves the
// filesystem commands. It keeps one level of previous-directory history for
// the "-" shortcut.
type Navigator struct {
	bound     *boundary.Boundary
	fs        fileSystem
	ignore    ignoreMatcher
	treeDepth int
	current   string
	prev      string
}

// New creates a Navigator starting at startDir. A start directory that fails
// resolution or lies outside the boundary falls back to the boundary root
// rather than failing construction.
func New(bound *boundary.Boundary, fs fileSystem, ignore ignoreMatcher, treeDepth int, startDir string) *Navigator {
	current, err := bound.Resolve(startDir)
	if err != nil {
		current = bound.Root()
	}
	return &Navigator{
		bound:     bound,
		fs:        fs,
		ignore:    ignore,
		treeDepth: treeDepth,
		current:   current,
		prev:      current,
	}
}

// Cd changes the current directory. An empty target goes home, ".." goes to
// the parent, "-" goes to the previous directory. Returns the new current
// directory.
func (n *Navigator) Cd(target string) (string, error) {
	var raw string
	switch target {
	case "":
		raw = n.bound.Root()
	case "..":
		raw = filepath.Dir(n.current)
	case "-":
		raw = n.prev
	default:
		raw = n.join(target)
	}

	resolved, err := n.resolve(raw)
	if err != nil {
		return "", err
	}

	info, err := n.fs.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, target)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotADirectory, target)
	}

	n.prev = n.current
	n.current = resolved
	return n.current, nil
}

// Ls lists a directory, directories first, each group sorted by name.
// An empty path lists the current directory.
func (n *Navigator) Ls(path string) ([]Entry, error) {
	target := n.current
	if path != "" {
		target = n.join(path)
	}

	resolved, err := n.resolve(target)
	if err != nil {
		return nil, err
	}

	info, err := n.fs.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	dirEntries, err := n.fs.ReadDir(resolved)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entry := Entry{Name: de.Name(), IsDir: de.IsDir()}
		if !de.IsDir() {
			if info, err := de.Info(); err == nil {
				entry.Size = info.Size()
			}
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// Pwd returns the current directory's absolute path.
func (n *Navigator) Pwd() string {
	return n.current
}

// CurrentDir returns the directory relative patterns resolve against.
func (n *Navigator) CurrentDir() string {
	return n.current
}

// RelPath returns the current directory in "~"-relative form for the prompt,
// or the absolute path if it is not under the boundary root.
func (n *Navigator) RelPath() string {
	root := n.bound.Root()
	if n.current == root {
		return "~"
	}
	rel, err := filepath.Rel(root, n.current)
	if err != nil || strings.HasPrefix(rel, "..") {
		return n.current
	}
	return "~/" + filepath.ToSlash(rel)
}

// Cat reads a file for display, tagging it with a fence language when the
// extension marks it as code.
func (n *Navigator) Cat(path string) (*FileView, error) {
	resolved, err := n.resolve(n.join(path))
	if err != nil {
		return nil, err
	}

	info, err := n.fs.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	content, err := n.fs.ReadFile(resolved)
	if err != nil {
		return nil, err
	}

	return &FileView{
		Name:     filepath.Base(resolved),
		Content:  string(content),
		Language: languageFor(resolved),
	}, nil
}

// join makes a target absolute against the current directory.
func (n *Navigator) join(target string) string {
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(n.current, target)
}

// resolve canonicalises a path through the boundary, mapping a missing path
// onto ErrNotFound. Everything else fails closed with the boundary's error.
func (n *Navigator) resolve(path string) (string, error) {
	resolved, err := n.bound.Resolve(path)
	if err != nil {
		var resolveErr *boundary.ResolveError
		if errors.As(err, &resolveErr) && errors.Is(resolveErr.Cause, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", err
	}
	return resolved, nil
}

// fenceLanguages maps file extensions to markdown fence languages.
var fenceLanguages = map[string]string{
	".go":   "go",
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".java": "java",
	".cpp":  "cpp",
	".c":    "c",
	".h":    "c",
	".css":  "css",
	".html": "html",
	".sh":   "bash",
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
	".toml": "toml",
	".rs":   "rust",
}

// languageFor returns the fence language for a path, or empty for non-code files.
func languageFor(path string) string {
	return fenceLanguages[strings.ToLower(filepath.Ext(path))]
}
