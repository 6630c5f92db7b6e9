package domain

import (
	"errors"
	"io/fs"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"metadata", &MetadataError{Path: "/a/b", Err: cause}, "get metadata for /a/b: permission denied"},
		{"listing", &DirectoryListingError{Path: "/a", Err: cause}, "read dir /a: permission denied"},
		{"entry", &DirectoryEntryError{Path: "/a", Err: cause}, "read dir /a: permission denied"},
		{"pattern", &PatternCompilationError{Pattern: "(", Err: cause}, `compile pattern "(": permission denied`},
		{"cycle", &CycleError{Path: "/a/loop"}, "skip cycle at /a/loop: directory already visited"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestErrorsUnwrap(t *testing.T) {
	err := &MetadataError{Path: "/missing", Err: fs.ErrNotExist}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected MetadataError to unwrap to fs.ErrNotExist")
	}

	var listErr *DirectoryListingError
	wrapped := error(&DirectoryListingError{Path: "/x", Err: fs.ErrPermission})
	if !errors.As(wrapped, &listErr) || listErr.Path != "/x" {
		t.Errorf("expected DirectoryListingError for /x, got %v", wrapped)
	}
	if !errors.Is(wrapped, fs.ErrPermission) {
		t.Error("expected DirectoryListingError to unwrap to fs.ErrPermission")
	}
}

func TestFileIDIsZero(t *testing.T) {
	if !(FileID{}).IsZero() {
		t.Error("expected zero FileID to report IsZero")
	}
	if (FileID{Dev: 1, Ino: 2}).IsZero() {
		t.Error("expected populated FileID not to report IsZero")
	}
}

func TestCycleErrorUnwrap(t *testing.T) {
	err := &CycleError{Path: "/a"}
	if !errors.Is(err, ErrCycle) {
		t.Error("expected CycleError to unwrap to ErrCycle")
	}
}
