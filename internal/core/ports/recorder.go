package ports

// ArtifactRecorder receives the artifacts and cache metadata a rule produces.
//
//go:generate mockgen -source=recorder.go -destination=mocks/mock_recorder.go -package=mocks
type ArtifactRecorder interface {
	// RecordArtifact registers a produced file.
	RecordArtifact(path string) error

	// AddMetadata stores a key/value pair for later incremental builds.
	AddMetadata(key, value string) error
}

// RecordSession is an ArtifactRecorder for a single rule execution whose
// entries are persisted only when Commit is called.
type RecordSession interface {
	ArtifactRecorder

	// Commit persists the recorded artifacts and metadata.
	Commit() error
}
