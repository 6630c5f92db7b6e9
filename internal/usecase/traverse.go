package usecase

import (
	"errors"

	"rfind/internal/adapter/matcher"
	"rfind/internal/domain"
	"rfind/internal/port"
)

// Traverser walks a directory tree depth-first and collects the entries
// accepted by a filter.
type Traverser struct {
	fs   port.FileSystem
	sink port.DiagnosticSink

	// OnVisit, when set, is called after each entry has been evaluated.
	OnVisit func(visited int, path string)

	visited int
}

// NewTraverser creates a traverser. A nil sink discards diagnostics.
func NewTraverser(fs port.FileSystem, sink port.DiagnosticSink) *Traverser {
	if sink == nil {
		sink = port.DiagnosticFunc(func(domain.Diagnostic) {})
	}
	return &Traverser{fs: fs, sink: sink}
}

// Visited returns the number of entries evaluated so far.
func (t *Traverser) Visited() int {
	return t.visited
}

type pending struct {
	entry domain.DirEntry
	file  *domain.File
}

// Traverse evaluates root and every entry below it in pre-order and returns the
// matches. A parent always precedes its descendants and each subtree is
// contiguous; siblings keep the listing order. Failures on single entries or
// directories are reported to the sink and the walk goes on.
func (t *Traverser) Traverse(root domain.File, filter matcher.Filter) []domain.File {
	var matches []domain.File
	entered := make(map[domain.FileID]struct{})

	stack := []pending{{file: &root}}
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		file, ok := t.resolve(next)
		if !ok {
			continue
		}

		if filter.Match(file) {
			matches = append(matches, file)
		}
		t.visited++
		if t.OnVisit != nil {
			t.OnVisit(t.visited, file.Path)
		}

		if !file.IsDir {
			continue
		}

		if !file.ID.IsZero() {
			if _, seen := entered[file.ID]; seen {
				t.sink.Report(domain.Diagnostic{
					Kind: domain.KindCycle,
					Path: file.Path,
					Err:  &domain.CycleError{Path: file.Path},
				})
				continue
			}
			entered[file.ID] = struct{}{}
		}

		entries, err := t.fs.ReadDir(file.Path)
		if err != nil {
			var listErr *domain.DirectoryListingError
			if !errors.As(err, &listErr) {
				err = &domain.DirectoryListingError{Path: file.Path, Err: err}
			}
			t.sink.Report(domain.Diagnostic{Kind: domain.KindReadDir, Path: file.Path, Err: err})
			continue
		}

		for i := len(entries) - 1; i >= 0; i-- {
			stack = append(stack, pending{entry: entries[i]})
		}
	}

	return matches
}

// resolve turns a pending listing record into a File, reporting why it can't.
func (t *Traverser) resolve(p pending) (domain.File, bool) {
	if p.file != nil {
		return *p.file, true
	}

	if p.entry.Err != nil {
		err := p.entry.Err
		var entryErr *domain.DirectoryEntryError
		if !errors.As(err, &entryErr) {
			err = &domain.DirectoryEntryError{Path: p.entry.Path, Err: err}
		}
		t.sink.Report(domain.Diagnostic{Kind: domain.KindDirEntry, Path: p.entry.Path, Err: err})
		return domain.File{}, false
	}

	file, err := t.fs.Stat(p.entry.Path)
	if err != nil {
		t.sink.Report(domain.Diagnostic{Kind: domain.KindMetadata, Path: p.entry.Path, Err: asMetadataError(p.entry.Path, err)})
		return domain.File{}, false
	}
	return file, true
}

func asMetadataError(path string, err error) error {
	var metaErr *domain.MetadataError
	if errors.As(err, &metaErr) {
		return err
	}
	return &domain.MetadataError{Path: path, Err: err}
}
