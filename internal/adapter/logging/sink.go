package logging

import (
	"errors"
	"fmt"
	"io/fs"

	"rfind/internal/domain"
)

// DiagnosticSink writes each diagnostic to a Logger at warn level.
type DiagnosticSink struct {
	logger Logger
}

func NewDiagnosticSink(logger Logger) *DiagnosticSink {
	return &DiagnosticSink{logger: logger}
}

func (s *DiagnosticSink) Report(d domain.Diagnostic) {
	s.logger.Log(LevelWarn, describe(d), cause(d.Err))
}

func describe(d domain.Diagnostic) string {
	switch d.Kind {
	case domain.KindMetadata:
		return fmt.Sprintf("get metadata for %s", d.Path)
	case domain.KindReadDir, domain.KindDirEntry:
		return fmt.Sprintf("read dir %s", d.Path)
	case domain.KindPattern:
		return fmt.Sprintf("compile pattern %q (matching everything instead)", d.Path)
	case domain.KindCycle:
		return fmt.Sprintf("skip cycle at %s", d.Path)
	default:
		return d.Path
	}
}

// cause strips the typed wrapper so the line reads "<what> <path>: <cause>".
func cause(err error) error {
	if err == nil {
		return nil
	}
	if inner := errors.Unwrap(err); inner != nil {
		err = inner
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
