package usecase

import (
	"errors"
	"io/fs"

	"rfind/internal/domain"
)

// fakeFS is an in-memory port.FileSystem whose listings keep insertion order.
type fakeFS struct {
	files    map[string]domain.File
	children map[string][]string

	listErr  map[string]error
	entryErr map[string]error
	statErr  map[string]error

	listed []string
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		files:    make(map[string]domain.File),
		children: make(map[string][]string),
		listErr:  make(map[string]error),
		entryErr: make(map[string]error),
		statErr:  make(map[string]error),
	}
}

func (f *fakeFS) dir(path string) *fakeFS {
	f.files[path] = domain.File{Path: path, Size: 4096, IsDir: true}
	return f
}

func (f *fakeFS) file(path string, size uint64) *fakeFS {
	f.files[path] = domain.File{Path: path, Size: size}
	return f
}

func (f *fakeFS) link(parent, child string) *fakeFS {
	f.children[parent] = append(f.children[parent], child)
	return f
}

func (f *fakeFS) Stat(path string) (domain.File, error) {
	if err, ok := f.statErr[path]; ok {
		return domain.File{}, &domain.MetadataError{Path: path, Err: err}
	}
	file, ok := f.files[path]
	if !ok {
		return domain.File{}, &domain.MetadataError{Path: path, Err: fs.ErrNotExist}
	}
	return file, nil
}

func (f *fakeFS) ReadDir(dir string) ([]domain.DirEntry, error) {
	f.listed = append(f.listed, dir)
	if err, ok := f.listErr[dir]; ok {
		return nil, &domain.DirectoryListingError{Path: dir, Err: err}
	}
	var entries []domain.DirEntry
	for _, child := range f.children[dir] {
		if err, ok := f.entryErr[child]; ok {
			entries = append(entries, domain.DirEntry{Path: dir, Err: err})
			continue
		}
		entries = append(entries, domain.DirEntry{Path: child})
	}
	return entries, nil
}

var errDenied = errors.New("permission denied")

// scenarioTree is /root/a.txt (10 bytes) and /root/sub/b.txt (5 bytes).
func scenarioTree() *fakeFS {
	return newFakeFS().
		dir("/root").
		file("/root/a.txt", 10).
		dir("/root/sub").
		file("/root/sub/b.txt", 5).
		link("/root", "/root/a.txt").
		link("/root", "/root/sub").
		link("/root/sub", "/root/sub/b.txt")
}

type diagRecorder struct {
	diags []domain.Diagnostic
}

func (r *diagRecorder) Report(d domain.Diagnostic) {
	r.diags = append(r.diags, d)
}

func (r *diagRecorder) kinds() []domain.DiagnosticKind {
	var kinds []domain.DiagnosticKind
	for _, d := range r.diags {
		kinds = append(kinds, d.Kind)
	}
	return kinds
}

func paths(files []domain.File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Path)
	}
	return out
}
