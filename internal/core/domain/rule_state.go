package domain

// RuleState is the lifecycle state of a single rule execution.
type RuleState string

const (
	// RuleUnplanned is the state of a freshly constructed rule.
	RuleUnplanned RuleState = "unplanned"
	// RulePlanned indicates the step sequence has been built.
	RulePlanned RuleState = "planned"
	// RuleExecuting indicates the steps are running.
	RuleExecuting RuleState = "executing"
	// RuleSucceededWithArtifact indicates every step before the metadata
	// record succeeded and the translation tool produced an artifact.
	RuleSucceededWithArtifact RuleState = "succeeded_with_artifact"
	// RuleSucceededWithoutArtifact indicates every step before the metadata
	// record succeeded and translation was skipped for an empty library.
	RuleSucceededWithoutArtifact RuleState = "succeeded_without_artifact"
	// RuleMetadataRecorded is the terminal success state.
	RuleMetadataRecorded RuleState = "metadata_recorded"
	// RuleFailed is the terminal failure state.
	RuleFailed RuleState = "failed"
)

var ruleTransitions = map[RuleState][]RuleState{
	RuleUnplanned:                {RulePlanned, RuleFailed},
	RulePlanned:                  {RuleExecuting, RuleFailed},
	RuleExecuting:                {RuleSucceededWithArtifact, RuleSucceededWithoutArtifact, RuleFailed},
	RuleSucceededWithArtifact:    {RuleMetadataRecorded, RuleFailed},
	RuleSucceededWithoutArtifact: {RuleMetadataRecorded, RuleFailed},
}

// CanTransition reports whether moving from s to next is allowed.
func (s RuleState) CanTransition(next RuleState) bool {
	for _, allowed := range ruleTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s RuleState) IsTerminal() bool {
	return s == RuleMetadataRecorded || s == RuleFailed
}

// RuleStatus is the scheduler-level status of a rule within a build.
type RuleStatus string

const (
	// RuleStatusPending indicates the rule is waiting to be scheduled.
	RuleStatusPending RuleStatus = "Pending"
	// RuleStatusRunning indicates the rule is executing.
	RuleStatusRunning RuleStatus = "Running"
	// RuleStatusCompleted indicates the rule executed successfully.
	RuleStatusCompleted RuleStatus = "Completed"
	// RuleStatusCached indicates the recorded fingerprint matched and the
	// rule was not executed.
	RuleStatusCached RuleStatus = "Cached"
	// RuleStatusFailed indicates the rule execution failed.
	RuleStatusFailed RuleStatus = "Failed"
)

// IsTerminal reports whether the status is final for the current build.
func (s RuleStatus) IsTerminal() bool {
	switch s {
	case RuleStatusCompleted, RuleStatusCached, RuleStatusFailed:
		return true
	default:
		return false
	}
}
