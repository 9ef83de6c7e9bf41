package domain

import (
	"iter"
	"slices"
	"strings"
)

// Fingerprint is a hex encoded hash summarizing a library and the observable
// interface of its transitive dependencies (the "ABI key").
// The zero value is a valid, if uninformative, fingerprint.
type Fingerprint string

// String returns the hex form of the fingerprint.
func (f Fingerprint) String() string {
	return string(f)
}

// ClassEntry pairs a fully qualified class name with the hash of its bytecode.
type ClassEntry struct {
	Name string
	Hash Fingerprint
}

// ClassIndex is the sorted set of classes contained in a compiled library,
// together with the library's aggregated dependency fingerprint.
// A ClassIndex is immutable once constructed.
type ClassIndex struct {
	entries     []ClassEntry
	fingerprint Fingerprint
}

// NewClassIndex builds a ClassIndex from a name to hash mapping.
// The mapping is copied and sorted by class name.
func NewClassIndex(classes map[string]Fingerprint, fingerprint Fingerprint) ClassIndex {
	entries := make([]ClassEntry, 0, len(classes))
	for name, hash := range classes {
		entries = append(entries, ClassEntry{Name: name, Hash: hash})
	}
	slices.SortFunc(entries, func(a, b ClassEntry) int {
		return strings.Compare(a.Name, b.Name)
	})

	return ClassIndex{
		entries:     entries,
		fingerprint: fingerprint,
	}
}

// Len returns the number of classes in the index.
func (c ClassIndex) Len() int {
	return len(c.entries)
}

// IsEmpty reports whether the library contains no classes.
func (c ClassIndex) IsEmpty() bool {
	return len(c.entries) == 0
}

// Fingerprint returns the aggregated dependency fingerprint.
func (c ClassIndex) Fingerprint() Fingerprint {
	return c.fingerprint
}

// Hash returns the content hash for the named class.
func (c ClassIndex) Hash(name string) (Fingerprint, bool) {
	i, found := slices.BinarySearchFunc(c.entries, name, func(e ClassEntry, target string) int {
		return strings.Compare(e.Name, target)
	})
	if !found {
		return "", false
	}
	return c.entries[i].Hash, true
}

// Entries yields the classes in name order.
func (c ClassIndex) Entries() iter.Seq[ClassEntry] {
	return func(yield func(ClassEntry) bool) {
		for _, e := range c.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Names returns the sorted class names.
func (c ClassIndex) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}
