// Package domain contains the core domain models for pre-dexing libraries.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph is the dependency graph of declared libraries.
type Graph struct {
	libraries      map[BuildTarget]LibrarySpec
	executionOrder []BuildTarget
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		libraries: make(map[BuildTarget]LibrarySpec),
	}
}

// AddLibrary adds a library to the graph.
// It returns an error if a library with the same target already exists.
func (g *Graph) AddLibrary(lib *LibrarySpec) error {
	if _, exists := g.libraries[lib.Target]; exists {
		return zerr.With(ErrTargetAlreadyExists, "target", lib.Target.String())
	}
	g.libraries[lib.Target] = *lib
	return nil
}

// GetLibrary returns the library declared for target.
func (g *Graph) GetLibrary(target BuildTarget) (LibrarySpec, bool) {
	lib, ok := g.libraries[target]
	return lib, ok
}

// Len returns the number of libraries in the graph.
func (g *Graph) Len() int {
	return len(g.libraries)
}

// Validate checks for missing dependencies and cycles using a topological sort.
// It populates the execution order used by Walk if successful.
func (g *Graph) Validate() error {
	g.executionOrder = make([]BuildTarget, 0, len(g.libraries))
	visited := make(map[BuildTarget]int) // 0: unvisited, 1: visiting, 2: visited
	var path []BuildTarget

	var visit func(u BuildTarget) error
	visit = func(u BuildTarget) error {
		visited[u] = 1
		path = append(path, u)

		lib, exists := g.libraries[u]
		if !exists {
			return zerr.With(ErrMissingDependency, "dependency", u.String())
		}

		for _, dep := range lib.Deps {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	for _, target := range g.sortedTargets() {
		if visited[target] == 0 {
			if err := visit(target); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *Graph) sortedTargets() []BuildTarget {
	targets := make([]BuildTarget, 0, len(g.libraries))
	for target := range g.libraries {
		targets = append(targets, target)
	}
	slices.SortFunc(targets, func(a, b BuildTarget) int {
		return strings.Compare(a.String(), b.String())
	})
	return targets
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []BuildTarget, dep BuildTarget) error {
	startIdx := slices.Index(path, dep)
	parts := make([]string, 0, len(path)-startIdx+1)
	for _, node := range path[startIdx:] {
		parts = append(parts, node.String())
	}
	parts = append(parts, dep.String())
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(parts, " -> "))
}

// Walk returns an iterator that yields libraries so that every library comes
// after its dependencies.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[LibrarySpec] {
	return func(yield func(LibrarySpec) bool) {
		for _, target := range g.executionOrder {
			if !yield(g.libraries[target]) {
				return
			}
		}
	}
}
