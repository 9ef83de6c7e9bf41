package domain

// OutputPath is the optional location of a rule's output.
// A rule that produced nothing returns NoOutput rather than an empty path.
type OutputPath struct {
	path  string
	valid bool
}

// SomeOutput wraps a path that may hold the rule's output.
func SomeOutput(path string) OutputPath {
	return OutputPath{path: path, valid: true}
}

// NoOutput reports that the rule has no output.
func NoOutput() OutputPath {
	return OutputPath{}
}

// Get returns the path and whether it is present.
func (o OutputPath) Get() (string, bool) {
	return o.path, o.valid
}

// IsPresent reports whether an output path is available.
func (o OutputPath) IsPresent() bool {
	return o.valid
}

// String renders the path, or "<none>".
func (o OutputPath) String() string {
	if !o.valid {
		return "<none>"
	}
	return o.path
}
