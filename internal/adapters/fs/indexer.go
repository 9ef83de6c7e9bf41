package fs

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/predex/internal/core/domain"
	"go.trai.ch/predex/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ClassIndexer = (*Indexer)(nil)

const classSuffix = ".class"

// Indexer builds class indexes from jars and class directories.
type Indexer struct {
	walker *Walker
}

// NewIndexer creates a new Indexer.
func NewIndexer(walker *Walker) *Indexer {
	return &Indexer{walker: walker}
}

// Index enumerates the classes at path and computes the library's ABI key.
// The key covers every class name and content hash plus the fingerprints of
// the library's dependencies, so it changes whenever anything the library
// exposes, or depends on, changes.
func (i *Indexer) Index(path string, deps []domain.Fingerprint) (domain.ClassIndex, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.ClassIndex{}, zerr.With(zerr.Wrap(err, domain.ErrIndexFailed.Error()), "path", path)
	}

	var classes map[string]domain.Fingerprint
	if info.IsDir() {
		classes, err = i.indexDirectory(path)
	} else {
		classes, err = i.indexJar(path)
	}
	if err != nil {
		return domain.ClassIndex{}, zerr.With(zerr.Wrap(err, domain.ErrIndexFailed.Error()), "path", path)
	}

	return domain.NewClassIndex(classes, abiKey(classes, deps)), nil
}

func (i *Indexer) indexDirectory(root string) (map[string]domain.Fingerprint, error) {
	classes := make(map[string]domain.Fingerprint)
	for path, err := range i.walker.WalkFiles(root, []string{"*" + classSuffix}) {
		if err != nil {
			return nil, err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil, err
		}

		hash, err := hashFile(path)
		if err != nil {
			return nil, err
		}
		classes[className(filepath.ToSlash(rel))] = hash
	}
	return classes, nil
}

func (i *Indexer) indexJar(path string) (map[string]domain.Fingerprint, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close() //nolint:errcheck // Read-only archive

	classes := make(map[string]domain.Fingerprint)
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isClassEntry(f.Name) {
			continue
		}

		hash, err := hashZipEntry(f)
		if err != nil {
			return nil, zerr.With(err, "entry", f.Name)
		}
		classes[className(f.Name)] = hash
	}
	return classes, nil
}

func isClassEntry(name string) bool {
	return strings.HasSuffix(name, classSuffix) && !strings.HasPrefix(name, "META-INF/")
}

// className converts "com/example/Foo$Bar.class" to "com.example.Foo$Bar".
func className(entry string) string {
	return strings.ReplaceAll(strings.TrimSuffix(entry, classSuffix), "/", ".")
}

func hashFile(path string) (domain.Fingerprint, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from walking the library output
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	return hashReader(f)
}

func hashZipEntry(f *zip.File) (domain.Fingerprint, error) {
	rc, err := f.Open()
	if err != nil {
		return "", zerr.Wrap(err, "failed to open jar entry")
	}
	defer rc.Close() //nolint:errcheck // Best effort close in defer

	return hashReader(rc)
}

func hashReader(r io.Reader) (domain.Fingerprint, error) {
	hasher := xxhash.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return "", zerr.Wrap(err, "failed to hash class content")
	}
	return domain.Fingerprint(fmt.Sprintf("%016x", hasher.Sum64())), nil
}

// abiKey folds the sorted classes and the sorted dependency fingerprints
// into a single hash.
func abiKey(classes map[string]domain.Fingerprint, deps []domain.Fingerprint) domain.Fingerprint {
	hasher := xxhash.New()

	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(classes[name].String())
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	sortedDeps := slices.Clone(deps)
	slices.Sort(sortedDeps)
	for _, dep := range sortedDeps {
		_, _ = hasher.WriteString(dep.String())
		_, _ = hasher.Write([]byte{0})
	}

	return domain.Fingerprint(fmt.Sprintf("%016x", hasher.Sum64()))
}
