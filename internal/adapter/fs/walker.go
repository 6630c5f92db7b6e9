package fs

import (
	"errors"
	"io"
	"os"
	"strings"

	"rfind/internal/domain"
)

const readDirBatch = 256

// OSFileSystem implements port.FileSystem on top of the os package.
type OSFileSystem struct{}

func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (OSFileSystem) Stat(path string) (domain.File, error) {
	return FromPath(path)
}

// ReadDir lists dir in directory order. The handle is closed before returning.
// A read failure after the listing started ends the listing and is reported
// as a single failed entry.
func (OSFileSystem) ReadDir(dir string) ([]domain.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, &domain.DirectoryListingError{Path: dir, Err: err}
	}
	defer f.Close()

	var entries []domain.DirEntry
	for {
		batch, err := f.ReadDir(readDirBatch)
		for _, d := range batch {
			entries = append(entries, domain.DirEntry{Path: JoinPath(dir, d.Name())})
		}
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			if len(entries) == 0 {
				return nil, &domain.DirectoryListingError{Path: dir, Err: err}
			}
			entries = append(entries, domain.DirEntry{
				Path: dir,
				Err:  &domain.DirectoryEntryError{Path: dir, Err: err},
			})
			return entries, nil
		}
	}
}

// JoinPath appends name to dir without cleaning dir, so discovered paths keep
// the prefix the user typed.
func JoinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, string(os.PathSeparator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
