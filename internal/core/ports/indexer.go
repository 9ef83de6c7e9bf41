package ports

import "go.trai.ch/predex/internal/core/domain"

// ClassIndexer enumerates and hashes the classes of a compiled library.
//
//go:generate mockgen -source=indexer.go -destination=mocks/mock_indexer.go -package=mocks
type ClassIndexer interface {
	// Index reads the jar or class directory at path and returns its class
	// index. The index fingerprint folds in the given dependency fingerprints.
	Index(path string, deps []domain.Fingerprint) (domain.ClassIndex, error)
}
