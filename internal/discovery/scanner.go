package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner finds result documents on disk
type Scanner struct {
	skipDirs map[string]bool
	filter   *Filter
}

// NewScanner creates a new Scanner that skips the given directory names and
// keeps only files accepted by filter
func NewScanner(skipDirs []string, filter *Filter) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap, filter: filter}
}

// Resolve expands a list of result paths into documents. Files are kept as
// given, even when the filter would reject them; directories are replaced by
// the sorted documents found below them. Order of the arguments is kept.
func (s *Scanner) Resolve(paths []string) ([]string, error) {
	var documents []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("result path: %w", err)
		}
		if !info.IsDir() {
			documents = append(documents, path)
			continue
		}

		found, err := s.Scan(path)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no result documents found in %s", path)
		}
		documents = append(documents, found...)
	}
	return documents, nil
}

// Scan finds all result documents below root, sorted by path
func (s *Scanner) Scan(root string) ([]string, error) {
	var files []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("result path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("result path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	documents := s.filter.FilterByName(files)
	sort.Strings(documents)
	return documents, nil
}
