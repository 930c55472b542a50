package contextstore

import (
	"time"
)

// FileReference is a context item backed by a file on disk. It owns no
// content; content is read fresh at query-composition time. Identity is the
// canonical absolute path.
type FileReference struct {
	AbsolutePath string // canonical absolute path (identity key)
	DisplayPath  string // path relative to the boundary root, or absolute
	ByteSize     int64  // size observed at add time
}

// PasteEntry is a context item holding pasted text outright, with no
// filesystem backing. Identity is the generated sequential ID.
type PasteEntry struct {
	ID        string // "paste_NNN", zero-padded, never reused
	Content   string
	CreatedAt time.Time
	LineCount int
	ByteSize  int
}

// SkippedFile records a per-item add failure. Batch operations never abort
// on one bad item; they collect skips and keep going.
type SkippedFile struct {
	Path   string
	Reason error
}

// AddReport summarises an AddFiles batch.
type AddReport struct {
	Added        int           // entries actually upserted
	Matched      int           // candidates considered
	AccessDenied int           // candidates rejected by the boundary (aggregated)
	Skipped      []SkippedFile // too-large / binary / unreadable, one warning each
}

// FileSummary is one file row of a context listing.
type FileSummary struct {
	DisplayPath string
	ByteSize    int64 // live size; add-time size when the file is gone
	Missing     bool  // file no longer stats
}

// PasteSummary is one paste row of a context listing.
type PasteSummary struct {
	ID        string
	LineCount int
	ByteSize  int
	Age       string // relative "time ago" string
}

// Summary is the structured result of List. Aggregates are computed on
// demand from live filesystem sizes, never cached.
type Summary struct {
	TotalItems int
	TotalBytes int64
	Files      []FileSummary
	Pastes     []PasteSummary
}
