package matcher

import (
	"fmt"
	"regexp"

	"rfind/internal/domain"
)

// PatternSet is an ordered list of compiled path patterns joined by AND.
type PatternSet []*regexp.Regexp

// Compile compiles every pattern. An invalid pattern is replaced by the empty
// pattern, which matches any path, and reported through report when it is non-nil.
func Compile(patterns []string, report func(domain.Diagnostic)) PatternSet {
	set := make(PatternSet, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			if report != nil {
				report(domain.Diagnostic{
					Kind: domain.KindPattern,
					Path: p,
					Err:  &domain.PatternCompilationError{Pattern: p, Err: err},
				})
			}
			re = matchAll
		}
		set = append(set, re)
	}
	return set
}

// CompileStrict compiles every pattern and fails on the first invalid one.
func CompileStrict(patterns []string) (PatternSet, error) {
	set := make(PatternSet, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern: %w", &domain.PatternCompilationError{Pattern: p, Err: err})
		}
		set = append(set, re)
	}
	return set, nil
}

var matchAll = regexp.MustCompile("")

// MatchesAll reports whether path contains a match for every pattern.
// An empty set matches everything.
func (s PatternSet) MatchesAll(path string) bool {
	for _, re := range s {
		if !re.MatchString(path) {
			return false
		}
	}
	return true
}

// SizeAbove is the strict size predicate.
func SizeAbove(size, min uint64) bool {
	return size > min
}

// Filter is the per-entry predicate applied by the traversal.
type Filter struct {
	Patterns PatternSet
	MinSize  uint64
}

func (f Filter) Match(file domain.File) bool {
	return f.Patterns.MatchesAll(file.Path) && SizeAbove(file.Size, f.MinSize)
}
