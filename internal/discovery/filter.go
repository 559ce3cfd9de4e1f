package discovery

import (
	"path/filepath"
	"strings"
)

// Filter selects result documents by file name pattern
type Filter struct {
	pattern string
}

// NewFilter creates a Filter for pattern. An empty pattern matches everything.
func NewFilter(pattern string) *Filter {
	return &Filter{pattern: pattern}
}

// Match reports whether the base name of path matches the pattern.
// Glob patterns ("*.xml", "TEST-?.xml", "[a-z]*.xml") must match the
// whole name; a pattern without wildcards matches as a substring.
func (f *Filter) Match(path string) bool {
	if f.pattern == "" {
		return true
	}
	name := filepath.Base(path)

	if strings.ContainsAny(f.pattern, "*?[") {
		matched, err := filepath.Match(f.pattern, name)
		return err == nil && matched
	}
	return strings.Contains(name, f.pattern)
}

// FilterByName returns the paths whose base name matches the pattern
func (f *Filter) FilterByName(paths []string) []string {
	if f.pattern == "" {
		return paths
	}

	var filtered []string
	for _, p := range paths {
		if f.Match(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
