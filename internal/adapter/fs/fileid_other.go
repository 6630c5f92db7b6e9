//go:build !unix

package fs

import (
	"os"

	"rfind/internal/domain"
)

func fileID(os.FileInfo) domain.FileID {
	return domain.FileID{}
}
