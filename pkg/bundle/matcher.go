package bundle

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// Matcher evaluates candidate paths against compiled include and exclude
// pattern sets. Patterns use unanchored regular-expression search: a pattern
// matches if it is found anywhere in the slash-normalized path, so `venv`
// matches any path containing that substring and `\.md$` matches any path
// ending in .md.
type Matcher struct {
	include []*regexp.Regexp
	exclude []*regexp.Regexp
}

// NewMatcher compiles the include and exclude pattern lists. A pattern that
// fails to compile is a configuration error and is reported before any file
// is processed.
func NewMatcher(include, exclude []string) (*Matcher, error) {
	m := &Matcher{}
	for _, p := range include {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", p, err)
		}
		m.include = append(m.include, re)
	}
	for _, p := range exclude {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		m.exclude = append(m.exclude, re)
	}
	return m, nil
}

// ShouldProcess reports whether path passes the filter. Exclusion always
// wins: a path matching any exclude pattern is rejected regardless of the
// include patterns. Otherwise the path must match at least one include
// pattern; an empty include list therefore rejects every path.
func (m *Matcher) ShouldProcess(path string) bool {
	if m.Excluded(path) {
		return false
	}
	p := filepath.ToSlash(path)
	for _, re := range m.include {
		if re.MatchString(p) {
			return true
		}
	}
	return false
}

// Excluded reports whether path matches any exclude pattern.
func (m *Matcher) Excluded(path string) bool {
	p := filepath.ToSlash(path)
	for _, re := range m.exclude {
		if re.MatchString(p) {
			return true
		}
	}
	return false
}
