package cas

import (
	"maps"
	"slices"
	"sync"
	"time"

	"go.trai.ch/predex/internal/core/domain"
	"go.trai.ch/predex/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RecordSession = (*Recorder)(nil)

// Recorder buffers the artifacts and metadata of one rule execution.
// Nothing reaches the store until Commit, so a failed rule leaves its
// previous record untouched.
type Recorder struct {
	store  ports.RecordStore
	root   string
	target domain.BuildTarget

	mu        sync.Mutex
	artifacts []string
	metadata  map[string]string
	committed bool
}

// NewRecorder creates a Recorder for target in the workspace at root.
func NewRecorder(store ports.RecordStore, root string, target domain.BuildTarget) *Recorder {
	return &Recorder{
		store:    store,
		root:     root,
		target:   target,
		metadata: make(map[string]string),
	}
}

// RecordArtifact registers a produced file.
func (r *Recorder) RecordArtifact(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.committed {
		return zerr.With(domain.ErrRecordMetadataFailed, "path", path)
	}
	if !slices.Contains(r.artifacts, path) {
		r.artifacts = append(r.artifacts, path)
	}
	return nil
}

// AddMetadata stores a key/value pair. Later values for the same key win.
func (r *Recorder) AddMetadata(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.committed {
		return zerr.With(domain.ErrRecordMetadataFailed, "key", key)
	}
	if key == "" {
		return zerr.With(domain.ErrRecordMetadataFailed, "reason", "empty key")
	}
	r.metadata[key] = value
	return nil
}

// Record returns the buffered entries as a build record.
func (r *Recorder) Record() *domain.BuildRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	return &domain.BuildRecord{
		Target:    r.target.String(),
		Artifacts: slices.Clone(r.artifacts),
		Metadata:  maps.Clone(r.metadata),
		Timestamp: time.Now(),
	}
}

// Commit writes the buffered entries to the store. A Recorder commits once.
func (r *Recorder) Commit() error {
	record := r.Record()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.committed {
		return nil
	}
	if err := r.store.Put(r.root, record); err != nil {
		return err
	}
	r.committed = true
	return nil
}
