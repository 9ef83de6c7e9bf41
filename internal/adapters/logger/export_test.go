// export_test.go exports private functions for white-box testing.
package logger

// ErrorEntry exposes an error chain link to tests.
type ErrorEntry = errorEntry

// Message returns the entry's message.
func (e ErrorEntry) Message() string { return e.message }

// Metadata returns the entry's metadata.
func (e ErrorEntry) Metadata() map[string]any { return e.metadata }

// ExportErrorFormatting exports the private error formatting functions for testing.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
