// Package fs provides file system adapters for rule steps and class indexing.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file under root whose name matches one of
// the given patterns, skipping VCS directories. An empty pattern list matches
// every file. Paths are yielded with the root prefix, in lexical order.
// A walk error is yielded once and ends the iteration.
func (w *Walker) WalkFiles(root string, patterns []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if w.shouldSkipDir(d) {
				return filepath.SkipDir
			}

			if d.IsDir() || !d.Type().IsRegular() || !matchesAny(d.Name(), patterns) {
				return nil
			}

			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

// shouldSkipDir reports whether d is a directory that never contains classes.
func (w *Walker) shouldSkipDir(d fs.DirEntry) bool {
	if !d.IsDir() {
		return false
	}
	switch d.Name() {
	case ".git", ".jj", ".predex":
		return true
	default:
		return false
	}
}

func matchesAny(name string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
