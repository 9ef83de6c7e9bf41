package domain

import "go.trai.ch/zerr"

var (
	// ErrPreconditionViolation is returned when a rule is constructed without a required collaborator.
	ErrPreconditionViolation = zerr.New("precondition violation")

	// ErrLibraryNotBuilt is returned when a library's class index is read before the library was built.
	ErrLibraryNotBuilt = zerr.New("library has not been built")

	// ErrInvalidBuildTarget is returned when a label cannot be parsed as a build target.
	ErrInvalidBuildTarget = zerr.New("invalid build target, expected format: //base/path:name")

	// ErrToolInvocation is returned when the translation tool fails to run or exits non-zero.
	ErrToolInvocation = zerr.New("translation tool failed")

	// ErrFilesystem is returned when a remove or mkdir step fails.
	ErrFilesystem = zerr.New("filesystem step failed")

	// ErrUnknownStep is returned when a plan contains a step kind the runner cannot execute.
	ErrUnknownStep = zerr.New("unknown step kind")

	// ErrInvalidStateTransition is returned when a rule moves between states out of order.
	ErrInvalidStateTransition = zerr.New("invalid rule state transition")

	// ErrRecordMetadataFailed is returned when the artifact recorder rejects an entry.
	ErrRecordMetadataFailed = zerr.New("failed to record artifact metadata")

	// ErrRuleExecutionFailed is returned when a dex rule fails.
	ErrRuleExecutionFailed = zerr.New("rule execution failed")

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrTargetAlreadyExists is returned when two libraries share a target.
	ErrTargetAlreadyExists = zerr.New("target already exists")

	// ErrMissingDependency is returned when a library references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the library dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrIndexFailed is returned when a library's classes cannot be enumerated.
	ErrIndexFailed = zerr.New("failed to index library classes")

	// ErrStoreCreateFailed is returned when the record store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create record store directory")

	// ErrStoreReadFailed is returned when a build record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build record")

	// ErrStoreUnmarshalFailed is returned when a build record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build record")

	// ErrStoreMarshalFailed is returned when a build record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build record")

	// ErrStoreWriteFailed is returned when a build record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build record")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file is found.
	ErrConfigNotFound = zerr.New("could not find predex.yaml")

	// ErrUnknownOutputMode is returned when the requested output mode is not supported.
	ErrUnknownOutputMode = zerr.New("unknown output mode, expected auto, tui or linear")

	// ErrMissingTranslator is returned when the config does not name a dx command.
	ErrMissingTranslator = zerr.New("no dx command configured")
)
