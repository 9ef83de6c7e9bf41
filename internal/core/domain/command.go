package domain

// Command is an external process invocation.
type Command struct {
	// Args holds the program followed by its arguments.
	Args []string
	// Environment overrides applied on top of the allow-listed system variables.
	Environment map[string]string
	// WorkingDir is the directory the process runs in. Empty means the current one.
	WorkingDir string
}
