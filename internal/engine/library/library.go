// Package library models upstream class-file libraries and their build state.
package library

import (
	"context"
	"sync"

	"go.trai.ch/predex/internal/core/domain"
	"go.trai.ch/predex/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ClassFileLibrary = (*Library)(nil)

// Library is a compiled upstream library declared in the workspace.
// It starts unbuilt; its class index is only readable after Index succeeds.
type Library struct {
	spec    domain.LibrarySpec
	output  string
	indexer ports.ClassIndexer

	mu    sync.RWMutex
	built bool
	index domain.ClassIndex
}

// New creates an unbuilt Library. output is the resolved jar or class
// directory path.
func New(spec domain.LibrarySpec, output string, indexer ports.ClassIndexer) *Library {
	return &Library{
		spec:    spec,
		output:  output,
		indexer: indexer,
	}
}

// Target returns the library's build target.
func (l *Library) Target() domain.BuildTarget {
	return l.spec.Target
}

// Deps returns the targets this library depends on.
func (l *Library) Deps() []domain.BuildTarget {
	return l.spec.Deps
}

// OutputPath returns the path of the compiled library.
func (l *Library) OutputPath() string {
	return l.output
}

// IsBuilt reports whether the class index is available.
func (l *Library) IsBuilt() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.built
}

// Index reads the compiled output and marks the library as built.
// deps are the fingerprints of the libraries this one depends on.
func (l *Library) Index(ctx context.Context, deps []domain.Fingerprint) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	index, err := l.indexer.Index(l.output, deps)
	if err != nil {
		return zerr.With(err, "target", l.spec.Target.String())
	}

	l.mu.Lock()
	l.index = index
	l.built = true
	l.mu.Unlock()

	return nil
}

// ClassIndex returns the classes the library contains.
// It returns domain.ErrLibraryNotBuilt until Index has succeeded.
func (l *Library) ClassIndex() (domain.ClassIndex, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !l.built {
		return domain.ClassIndex{}, zerr.With(domain.ErrLibraryNotBuilt, "target", l.spec.Target.String())
	}
	return l.index, nil
}
