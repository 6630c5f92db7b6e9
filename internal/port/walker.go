package port

import "rfind/internal/domain"

// FileSystem provides the metadata and listing primitives the traversal needs.
type FileSystem interface {
	// Stat reads the metadata of path. Errors are *domain.MetadataError.
	Stat(path string) (domain.File, error)

	// ReadDir lists the immediate entries of dir in the order the host yields them.
	// A failure to open or start the listing is a *domain.DirectoryListingError;
	// unreadable records are returned as entries with Err set.
	ReadDir(dir string) ([]domain.DirEntry, error)
}

// DiagnosticSink receives recoverable failures met during a search.
type DiagnosticSink interface {
	Report(d domain.Diagnostic)
}

// DiagnosticFunc adapts a function to DiagnosticSink.
type DiagnosticFunc func(d domain.Diagnostic)

func (f DiagnosticFunc) Report(d domain.Diagnostic) { f(d) }
