//go:build unix

package fs

import (
	"os"
	"syscall"

	"rfind/internal/domain"
)

func fileID(info os.FileInfo) domain.FileID {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return domain.FileID{}
	}
	return domain.FileID{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}
}
