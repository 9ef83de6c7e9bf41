// Package cas persists build records and merge inputs for incremental builds.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/predex/internal/core/domain"
	"go.trai.ch/predex/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RecordStore = (*Store)(nil)

// Store implements ports.RecordStore using a file-per-target strategy.
// Each target is stored as JSON under a name derived from its label, so
// concurrent rules never write the same file.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the build record for a target.
func (s *Store) Get(root string, target domain.BuildTarget) (*domain.BuildRecord, error) {
	var record domain.BuildRecord
	found, err := s.read(s.recordPath(root, target), &record)
	if err != nil {
		return nil, zerr.With(err, "target", target.String())
	}
	if !found {
		return nil, nil
	}
	return &record, nil
}

// Put stores the build record.
func (s *Store) Put(root string, record *domain.BuildRecord) error {
	target, err := domain.ParseBuildTarget(record.Target)
	if err != nil {
		return err
	}
	return zerr.With(s.write(s.recordPath(root, target), record), "target", record.Target)
}

// Delete removes the build record for a target.
func (s *Store) Delete(root string, target domain.BuildTarget) error {
	if err := os.Remove(s.recordPath(root, target)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "target", target.String())
	}
	return nil
}

// GetMerge retrieves the inputs of the last merge.
func (s *Store) GetMerge(root string) (*domain.MergeRecord, error) {
	var record domain.MergeRecord
	found, err := s.read(s.mergePath(root), &record)
	if err != nil || !found {
		return nil, err
	}
	return &record, nil
}

// PutMerge stores the inputs of a merge.
func (s *Store) PutMerge(root string, record *domain.MergeRecord) error {
	return s.write(s.mergePath(root), record)
}

// Clear removes all build records and the merge record.
func (s *Store) Clear(root string) error {
	if err := os.RemoveAll(filepath.Join(root, domain.PredexDirName)); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

func (s *Store) read(path string, v any) (bool, error) {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	return true, nil
}

func (s *Store) write(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) recordPath(root string, target domain.BuildTarget) string {
	hash := sha256.Sum256([]byte(target.String()))
	return filepath.Join(root, domain.DefaultStorePath(), hex.EncodeToString(hash[:])+".json")
}

func (s *Store) mergePath(root string) string {
	return filepath.Join(root, domain.DefaultMergeRecordPath())
}
