package ports

import "go.trai.ch/predex/internal/core/domain"

// RecordStore defines the interface for storing and retrieving build records.
// Records live under the given workspace root.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get retrieves the build record for a given target.
	// Returns nil, nil if not found.
	Get(root string, target domain.BuildTarget) (*domain.BuildRecord, error)

	// Delete removes the build record of a target. A missing record is not
	// an error.
	Delete(root string, target domain.BuildTarget) error

	// Put stores the build record.
	Put(root string, record *domain.BuildRecord) error

	// GetMerge retrieves the inputs of the last merge.
	// Returns nil, nil if no merge was recorded.
	GetMerge(root string) (*domain.MergeRecord, error)

	// PutMerge stores the inputs of a merge.
	PutMerge(root string, record *domain.MergeRecord) error

	// Clear removes every stored record.
	Clear(root string) error
}
