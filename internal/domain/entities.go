package domain

import "time"

// File is a snapshot of one filesystem entry taken when its metadata was read.
type File struct {
	Path  string
	Size  uint64
	IsDir bool
	// ID identifies the underlying inode. Zero when the platform doesn't expose one.
	ID FileID
}

// FileID is a device+inode pair.
type FileID struct {
	Dev uint64
	Ino uint64
}

func (id FileID) IsZero() bool {
	return id == FileID{}
}

// DirEntry is one record yielded by a directory listing. Err is set when the
// record itself could not be read; Path is then the directory being listed.
type DirEntry struct {
	Path string
	Err  error
}

type DiagnosticKind string

const (
	KindMetadata DiagnosticKind = "metadata"
	KindReadDir  DiagnosticKind = "read_dir"
	KindDirEntry DiagnosticKind = "dir_entry"
	KindPattern  DiagnosticKind = "pattern"
	KindCycle    DiagnosticKind = "cycle"
)

// Diagnostic describes a recoverable failure met while searching.
type Diagnostic struct {
	Kind DiagnosticKind `json:"kind"`
	Path string         `json:"path"`
	Err  error          `json:"-"`
}

type SavedSearch struct {
	Name      string    `json:"name"`
	Dirs      []string  `json:"dirs"`
	Patterns  []string  `json:"patterns"`
	MinSize   uint64    `json:"min_size"`
	CreatedAt time.Time `json:"created_at"`
}
