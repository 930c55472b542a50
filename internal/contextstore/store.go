// Package contextstore maintains the session's mutable registry of context
// items: file references keyed by canonical absolute path and pasted-text
// entries keyed by generated sequential IDs.
package contextstore

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"plexiterm/internal/boundary"
)

// fileSystem defines the minimal filesystem operations the store needs.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFileHead(path string, n int) ([]byte, error)
	ReadDir(path string) ([]os.DirEntry, error)
	Glob(pattern string) ([]string, error)
}

// binaryDetector reports whether sampled content looks binary.
type binaryDetector interface {
	IsBinaryContent(content []byte) bool
}

// Store is the mutable context registry. It is created empty once per
// session, mutated only by explicit add/remove/clear operations from the
// single input-handling flow, and discarded at process exit.
type Store struct {
	fs       fileSystem
	detector binaryDetector
	bound    *boundary.Boundary

	maxFileSize int64
	sampleSize  int

	files     map[string]*FileReference // keyed by canonical absolute path
	fileOrder []string                  // insertion order of file keys

	pastes       map[string]*PasteEntry // keyed by paste ID
	pasteOrder   []string               // insertion order of paste IDs
	pasteCounter int                    // monotonic, never reused

	now func() time.Time
}

// New creates an empty Store.
func New(bound *boundary.Boundary, fs fileSystem, detector binaryDetector, maxFileSize int64, sampleSize int) *Store {
	return &Store{
		fs:          fs,
		detector:    detector,
		bound:       bound,
		maxFileSize: maxFileSize,
		sampleSize:  sampleSize,
		files:       make(map[string]*FileReference),
		pastes:      make(map[string]*PasteEntry),
		now:         time.Now,
	}
}

// AddFiles expands pattern and upserts every surviving candidate into the
// file collection. If pattern contains a glob wildcard it is expanded
// against baseDir; a plain path naming a directory expands to its immediate
// children (one level). Per-candidate failures are collected in the report;
// the batch is never aborted by one bad item.
func (s *Store) AddFiles(pattern, baseDir string) (*AddReport, error) {
	candidates, err := s.expandPattern(pattern, baseDir)
	if err != nil {
		return nil, err
	}

	report := &AddReport{}
	for _, candidate := range candidates {
		report.Matched++
		s.addOne(candidate, report)
	}
	return report, nil
}

// expandPattern turns a user pattern into concrete candidate paths.
// Mode is selected up front: glob expansion when a wildcard is present,
// plain path resolution otherwise.
func (s *Store) expandPattern(pattern, baseDir string) ([]string, error) {
	if containsWildcard(pattern) {
		globPattern := pattern
		if !filepath.IsAbs(globPattern) {
			globPattern = filepath.Join(baseDir, globPattern)
		}
		matches, err := s.fs.Glob(globPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		return matches, nil
	}

	target := pattern
	if !filepath.IsAbs(target) {
		target = filepath.Join(baseDir, target)
	}

	info, err := s.fs.Stat(target)
	if err != nil {
		return nil, nil // nothing matched; caller reports "no files added"
	}

	if info.IsDir() {
		entries, err := s.fs.ReadDir(target)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", target, err)
		}
		children := make([]string, 0, len(entries))
		for _, entry := range entries {
			children = append(children, filepath.Join(target, entry.Name()))
		}
		return children, nil
	}

	return []string{target}, nil
}

// addOne validates a single candidate and upserts it. Validation order:
// boundary, regular file, size cap, binary sniff. Checks are enforced once
// here; reads at composition time handle later disappearance.
func (s *Store) addOne(candidate string, report *AddReport) {
	canonical, err := s.bound.Resolve(candidate)
	if err != nil {
		report.AccessDenied++
		return
	}

	info, err := s.fs.Stat(canonical)
	if err != nil || !info.Mode().IsRegular() {
		return // directories and specials are silently "not added"
	}

	if info.Size() > s.maxFileSize {
		report.Skipped = append(report.Skipped, SkippedFile{Path: candidate, Reason: ErrTooLarge})
		return
	}

	head, err := s.fs.ReadFileHead(canonical, s.sampleSize)
	if err != nil {
		report.Skipped = append(report.Skipped, SkippedFile{Path: candidate, Reason: ErrReadFailure})
		return
	}
	if s.detector.IsBinaryContent(head) {
		report.Skipped = append(report.Skipped, SkippedFile{Path: candidate, Reason: ErrBinaryFile})
		return
	}

	ref := &FileReference{
		AbsolutePath: canonical,
		DisplayPath:  s.displayPath(canonical),
		ByteSize:     info.Size(),
	}

	// Idempotent upsert: re-adding refreshes the entry but keeps its
	// original position in the ordering.
	if _, exists := s.files[canonical]; !exists {
		s.fileOrder = append(s.fileOrder, canonical)
	}
	s.files[canonical] = ref
	report.Added++
}

// AddPaste stores pasted text under the next sequential ID and returns the
// new entry. Paste content is already in memory and trusted; this never fails.
func (s *Store) AddPaste(content string) *PasteEntry {
	s.pasteCounter++
	entry := &PasteEntry{
		ID:        fmt.Sprintf("paste_%03d", s.pasteCounter),
		Content:   content,
		CreatedAt: s.now(),
		LineCount: strings.Count(content, "\n") + 1,
		ByteSize:  len(content),
	}
	s.pastes[entry.ID] = entry
	s.pasteOrder = append(s.pasteOrder, entry.ID)
	return entry
}

// RemoveFiles removes file entries matching pattern against their display
// paths. The bare wildcard-all token clears every file entry. Returns the
// count removed.
func (s *Store) RemoveFiles(pattern string) int {
	if pattern == "*" {
		removed := len(s.files)
		s.files = make(map[string]*FileReference)
		s.fileOrder = nil
		return removed
	}

	removed := 0
	kept := s.fileOrder[:0]
	for _, key := range s.fileOrder {
		ref := s.files[key]
		if matchesPattern(ref.DisplayPath, pattern) {
			delete(s.files, key)
			removed++
			continue
		}
		kept = append(kept, key)
	}
	s.fileOrder = kept
	return removed
}

// RemovePaste removes a paste by exact ID. The counter is not rewound;
// removed IDs are never reused.
func (s *Store) RemovePaste(id string) bool {
	if _, ok := s.pastes[id]; !ok {
		return false
	}
	delete(s.pastes, id)
	for i, existing := range s.pasteOrder {
		if existing == id {
			s.pasteOrder = append(s.pasteOrder[:i], s.pasteOrder[i+1:]...)
			break
		}
	}
	return true
}

// ClearAll empties both collections unconditionally and returns the prior counts.
func (s *Store) ClearAll() (filesRemoved, pastesRemoved int) {
	filesRemoved = len(s.files)
	pastesRemoved = len(s.pastes)
	s.files = make(map[string]*FileReference)
	s.fileOrder = nil
	s.pastes = make(map[string]*PasteEntry)
	s.pasteOrder = nil
	return filesRemoved, pastesRemoved
}

// List builds a summary of the current context. File sizes are stat'd live
// so the listing reflects the filesystem as it is now, not as it was at add
// time; a file that no longer stats is marked missing.
func (s *Store) List() Summary {
	summary := Summary{}
	now := s.now()

	for _, key := range s.fileOrder {
		ref := s.files[key]
		row := FileSummary{DisplayPath: ref.DisplayPath}
		if info, err := s.fs.Stat(ref.AbsolutePath); err == nil {
			row.ByteSize = info.Size()
		} else {
			row.ByteSize = ref.ByteSize
			row.Missing = true
		}
		summary.TotalBytes += row.ByteSize
		summary.Files = append(summary.Files, row)
	}

	for _, id := range s.pasteOrder {
		entry := s.pastes[id]
		summary.Pastes = append(summary.Pastes, PasteSummary{
			ID:        entry.ID,
			LineCount: entry.LineCount,
			ByteSize:  entry.ByteSize,
			Age:       FormatAgo(entry.CreatedAt, now),
		})
		summary.TotalBytes += int64(entry.ByteSize)
	}

	summary.TotalItems = len(summary.Files) + len(summary.Pastes)
	return summary
}

// Files returns the file references in insertion order.
func (s *Store) Files() []FileReference {
	out := make([]FileReference, 0, len(s.fileOrder))
	for _, key := range s.fileOrder {
		out = append(out, *s.files[key])
	}
	return out
}

// Pastes returns the paste entries in insertion order.
func (s *Store) Pastes() []PasteEntry {
	out := make([]PasteEntry, 0, len(s.pasteOrder))
	for _, id := range s.pasteOrder {
		out = append(out, *s.pastes[id])
	}
	return out
}

// Len returns the total number of context items.
func (s *Store) Len() int {
	return len(s.files) + len(s.pastes)
}

// displayPath renders a canonical path relative to the boundary root when
// possible, falling back to the absolute path.
func (s *Store) displayPath(canonical string) string {
	if rel, err := s.bound.Rel(canonical); err == nil {
		return rel
	}
	return canonical
}

// containsWildcard reports whether pattern holds a shell glob metacharacter.
func containsWildcard(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// matchesPattern matches a display path against a removal pattern. The mode
// is selected up front: shell-glob matching when a wildcard is present,
// exact-name matching otherwise. In both modes the base name is tried as
// well so "main.go" or "*.go" removes "src/main.go".
func matchesPattern(displayPath, pattern string) bool {
	base := path.Base(displayPath)
	if containsWildcard(pattern) {
		if ok, err := path.Match(pattern, displayPath); err == nil && ok {
			return true
		}
		ok, err := path.Match(pattern, base)
		return err == nil && ok
	}
	return pattern == displayPath || pattern == base
}
