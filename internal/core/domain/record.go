package domain

import "time"

const (
	// MetadataKeyABIKeyForDeps stores the fingerprint of a rule's dependencies.
	MetadataKeyABIKeyForDeps = "ABI_KEY_FOR_DEPS"
	// MetadataKeyABIKey stores the fingerprint of the rule's own output.
	MetadataKeyABIKey = "ABI_KEY"
)

// BuildRecord is the persisted outcome of a rule execution.
type BuildRecord struct {
	Target    string            `json:"target,omitzero"`
	Artifacts []string          `json:"artifacts,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Timestamp time.Time         `json:"timestamp,omitzero"`
}

// ABIKeyForDeps returns the recorded dependency fingerprint, if any.
func (r *BuildRecord) ABIKeyForDeps() (Fingerprint, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.Metadata[MetadataKeyABIKeyForDeps]
	return Fingerprint(v), ok
}

// MergeRecord is the set of pre-dexed inputs a merge last consumed,
// keyed by target label.
type MergeRecord struct {
	Inputs    map[string]Fingerprint `json:"inputs,omitempty"`
	Timestamp time.Time              `json:"timestamp,omitzero"`
}
