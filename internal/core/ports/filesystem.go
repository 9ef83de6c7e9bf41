package ports

// Filesystem provides the primitive filesystem steps used by rules.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type Filesystem interface {
	// Remove deletes path. With force set, a missing path is not an error.
	Remove(path string, force bool) error

	// EnsureDirectory creates path and any missing parents.
	EnsureDirectory(path string) error

	// Exists reports whether path exists.
	Exists(path string) (bool, error)
}
