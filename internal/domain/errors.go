package domain

import (
	"errors"
	"fmt"
)

// MetadataError reports that the metadata of Path could not be read.
type MetadataError struct {
	Path string
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("get metadata for %s: %v", e.Path, e.Err)
}

func (e *MetadataError) Unwrap() error { return e.Err }

// DirectoryListingError reports that the directory at Path could not be enumerated.
type DirectoryListingError struct {
	Path string
	Err  error
}

func (e *DirectoryListingError) Error() string {
	return fmt.Sprintf("read dir %s: %v", e.Path, e.Err)
}

func (e *DirectoryListingError) Unwrap() error { return e.Err }

// DirectoryEntryError reports an unreadable record inside the listing of Path.
type DirectoryEntryError struct {
	Path string
	Err  error
}

func (e *DirectoryEntryError) Error() string {
	return fmt.Sprintf("read dir %s: %v", e.Path, e.Err)
}

func (e *DirectoryEntryError) Unwrap() error { return e.Err }

type PatternCompilationError struct {
	Pattern string
	Err     error
}

func (e *PatternCompilationError) Error() string {
	return fmt.Sprintf("compile pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternCompilationError) Unwrap() error { return e.Err }

// ErrCycle is the cause carried by CycleError.
var ErrCycle = errors.New("directory already visited")

// CycleError reports a directory that was already entered during the same walk.
type CycleError struct {
	Path string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("skip cycle at %s: %v", e.Path, ErrCycle)
}

func (e *CycleError) Unwrap() error { return ErrCycle }
