package navigator

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"plexiterm/internal/fsutil"
)

// noisePatterns are always hidden from tree output, on top of whatever the
// project's .gitignore excludes.
var noisePatterns = []string{
	".git",
	".env",
	"node_modules",
	"__pycache__",
	"*.pyc",
	"*.so",
}

// Tree renders a depth-limited directory tree rooted at path (current
// directory when empty), hiding gitignored entries and common noise.
func (n *Navigator) Tree(target string) (string, error) {
	root := n.current
	if target != "" {
		root = n.join(target)
	}

	resolved, err := n.resolve(root)
	if err != nil {
		return "", err
	}

	info, err := n.fs.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, target)
	}

	var b strings.Builder
	b.WriteString(filepath.Base(resolved) + "/\n")
	if info.IsDir() {
		n.walkTree(&b, resolved, resolved, 0, "")
	}
	return b.String(), nil
}

// walkTree appends one directory level to the output and recurses into
// subdirectories until the depth limit.
func (n *Navigator) walkTree(b *strings.Builder, root, dir string, depth int, prefix string) {
	if depth >= n.treeDepth {
		return
	}

	dirEntries, err := n.fs.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(b, "%s(unreadable)\n", prefix)
		return
	}

	entries := make([]os.DirEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		rel, relErr := filepath.Rel(root, filepath.Join(dir, de.Name()))
		if relErr == nil && n.ignore != nil && n.ignore.ShouldIgnore(filepath.ToSlash(rel)) {
			continue
		}
		if isNoise(de.Name()) {
			continue
		}
		entries = append(entries, de)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	for i, de := range entries {
		last := i == len(entries)-1
		connector, childPrefix := "├── ", "│   "
		if last {
			connector, childPrefix = "└── ", "    "
		}

		if de.IsDir() {
			fmt.Fprintf(b, "%s%s%s/\n", prefix, connector, de.Name())
			n.walkTree(b, root, filepath.Join(dir, de.Name()), depth+1, prefix+childPrefix)
			continue
		}

		size := ""
		if info, err := de.Info(); err == nil {
			size = fmt.Sprintf(" (%s)", fsutil.FormatSize(info.Size()))
		}
		fmt.Fprintf(b, "%s%s%s%s\n", prefix, connector, de.Name(), size)
	}
}

// isNoise reports whether a base name matches one of the built-in noise patterns.
func isNoise(name string) bool {
	for _, pattern := range noisePatterns {
		if ok, err := path.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
