package domain

import (
	"path"
	"path/filepath"
	"strings"
	"unique"

	"go.trai.ch/zerr"
)

// BuildTarget identifies a rule within the build graph.
// Both components are interned, so targets are cheap to copy and compare and
// can be used directly as map keys.
type BuildTarget struct {
	basePath  unique.Handle[string]
	shortName unique.Handle[string]
}

// NewBuildTarget creates a BuildTarget from a base path and a short name.
func NewBuildTarget(basePath, shortName string) BuildTarget {
	return BuildTarget{
		basePath:  unique.Make(strings.Trim(basePath, "/")),
		shortName: unique.Make(shortName),
	}
}

// ParseBuildTarget parses a label of the form "//base/path:name".
func ParseBuildTarget(label string) (BuildTarget, error) {
	rest, ok := strings.CutPrefix(label, "//")
	if !ok {
		return BuildTarget{}, zerr.With(ErrInvalidBuildTarget, "label", label)
	}

	basePath, shortName, ok := strings.Cut(rest, ":")
	if !ok || shortName == "" || shortName == "." || shortName == ".." || strings.ContainsAny(shortName, "/:") {
		return BuildTarget{}, zerr.With(ErrInvalidBuildTarget, "label", label)
	}
	if !isCanonicalBasePath(basePath) {
		return BuildTarget{}, zerr.With(ErrInvalidBuildTarget, "label", label)
	}

	return NewBuildTarget(basePath, shortName), nil
}

// isCanonicalBasePath reports whether p is a clean relative path that stays
// below the directory it is joined to. Every target then owns a distinct
// dex path inside the gen dir.
func isCanonicalBasePath(p string) bool {
	if p == "" {
		return true
	}
	return path.Clean(p) == p && filepath.IsLocal(filepath.FromSlash(p))
}

// BasePath returns the directory part of the target, without leading slashes.
func (t BuildTarget) BasePath() string {
	var zero unique.Handle[string]
	if t.basePath == zero {
		return ""
	}
	return t.basePath.Value()
}

// ShortName returns the name part of the target.
func (t BuildTarget) ShortName() string {
	var zero unique.Handle[string]
	if t.shortName == zero {
		return ""
	}
	return t.shortName.Value()
}

// IsZero reports whether the target was never initialized or has no name.
func (t BuildTarget) IsZero() bool {
	return t.ShortName() == ""
}

// String returns the fully qualified label, e.g. "//app:core".
func (t BuildTarget) String() string {
	return "//" + t.BasePath() + ":" + t.ShortName()
}

// MarshalText implements encoding.TextMarshaler.
func (t BuildTarget) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *BuildTarget) UnmarshalText(text []byte) error {
	parsed, err := ParseBuildTarget(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
