package fs

import (
	"os"

	"rfind/internal/domain"
)

// FromPath reads the metadata of path, following symlinks. The returned
// File keeps path exactly as given.
func FromPath(path string) (domain.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.File{}, &domain.MetadataError{Path: path, Err: err}
	}
	return newFile(path, info), nil
}

func newFile(path string, info os.FileInfo) domain.File {
	var size uint64
	if info.Size() > 0 {
		size = uint64(info.Size())
	}
	return domain.File{
		Path:  path,
		Size:  size,
		IsDir: info.IsDir(),
		ID:    fileID(info),
	}
}
