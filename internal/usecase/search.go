package usecase

import (
	"fmt"

	"rfind/internal/adapter/matcher"
	"rfind/internal/domain"
	"rfind/internal/port"
)

// SearchUseCase runs a search over several roots.
type SearchUseCase struct {
	fs      port.FileSystem
	sink    port.DiagnosticSink
	onVisit func(visited int, path string)
}

// NewSearchUseCase creates a new search use case. A nil sink discards diagnostics.
func NewSearchUseCase(fs port.FileSystem, sink port.DiagnosticSink) *SearchUseCase {
	if sink == nil {
		sink = port.DiagnosticFunc(func(domain.Diagnostic) {})
	}
	return &SearchUseCase{fs: fs, sink: sink}
}

// OnVisit installs a progress callback shared by every root's traversal.
func (u *SearchUseCase) OnVisit(fn func(visited int, path string)) {
	u.onVisit = fn
}

// SearchRequest holds the parsed search parameters.
type SearchRequest struct {
	Dirs     []string
	Patterns []string
	MinSize  uint64
	// Strict rejects invalid patterns instead of treating them as match-all.
	Strict bool
}

type RootResult struct {
	Root    string
	Matches []domain.File
}

// SearchResult contains the per-root matches and run counters.
type SearchResult struct {
	Roots       []RootResult
	RootsFailed int
	Visited     int
	Diagnostics int
}

// Matches returns the matches of all roots in order.
func (r *SearchResult) Matches() []domain.File {
	var all []domain.File
	for _, root := range r.Roots {
		all = append(all, root.Matches...)
	}
	return all
}

// Search compiles the patterns once and traverses each root in turn. A root
// whose metadata can't be read is reported and skipped. The only error returned
// is an invalid pattern in strict mode.
func (u *SearchUseCase) Search(req SearchRequest) (*SearchResult, error) {
	result := &SearchResult{}
	sink := port.DiagnosticFunc(func(d domain.Diagnostic) {
		result.Diagnostics++
		u.sink.Report(d)
	})

	var patterns matcher.PatternSet
	if req.Strict {
		var err error
		patterns, err = matcher.CompileStrict(req.Patterns)
		if err != nil {
			return nil, err
		}
	} else {
		patterns = matcher.Compile(req.Patterns, sink.Report)
	}
	filter := matcher.Filter{Patterns: patterns, MinSize: req.MinSize}

	traverser := NewTraverser(u.fs, sink)
	traverser.OnVisit = u.onVisit

	for _, dir := range req.Dirs {
		root, err := u.fs.Stat(dir)
		if err != nil {
			result.RootsFailed++
			sink.Report(domain.Diagnostic{Kind: domain.KindMetadata, Path: dir, Err: asMetadataError(dir, err)})
			continue
		}
		result.Roots = append(result.Roots, RootResult{
			Root:    dir,
			Matches: traverser.Traverse(root, filter),
		})
	}
	result.Visited = traverser.Visited()

	return result, nil
}

func (r *SearchResult) String() string {
	return fmt.Sprintf("%d matches in %d roots (%d visited, %d failed roots, %d diagnostics)",
		len(r.Matches()), len(r.Roots), r.Visited, r.RootsFailed, r.Diagnostics)
}
