package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/predex/internal/core/domain"
	"go.trai.ch/predex/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Filesystem = (*Filesystem)(nil)

// Filesystem implements ports.Filesystem on the local disk.
type Filesystem struct{}

// NewFilesystem creates a new Filesystem.
func NewFilesystem() *Filesystem {
	return &Filesystem{}
}

// Remove deletes path, recursively. With force set a missing path is not an
// error, mirroring rm -rf.
func (f *Filesystem) Remove(path string, force bool) error {
	if force {
		if err := os.RemoveAll(path); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove path"), "path", path)
		}
		return nil
	}

	if err := os.Remove(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove path"), "path", path)
	}
	return nil
}

// EnsureDirectory creates path and any missing parents.
func (f *Filesystem) EnsureDirectory(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}

// Exists reports whether path exists.
func (f *Filesystem) Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	return true, nil
}
