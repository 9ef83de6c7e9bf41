// Package merge decides whether the pre-dexed jars of a build must be merged
// again by comparing their fingerprints with those of the last merge.
package merge

import (
	"maps"
	"slices"
	"time"

	"go.trai.ch/predex/internal/core/domain"
	"go.trai.ch/predex/internal/core/ports"
)

// Plan lists the differences between the current dex jars and the last merge.
type Plan struct {
	// Inputs are the current dex jars by target label.
	Inputs map[string]domain.Fingerprint
	// Changed holds the labels that are new or whose fingerprint changed.
	Changed []string
	// Removed holds the labels that took part in the last merge but no
	// longer produce a dex jar.
	Removed []string
}

// NeedsMerge reports whether the merged output is out of date.
func (p *Plan) NeedsMerge() bool {
	return len(p.Changed) > 0 || len(p.Removed) > 0
}

// Planner compares build outputs against the recorded merge inputs.
type Planner struct {
	store ports.RecordStore
}

// NewPlanner creates a new Planner.
func NewPlanner(store ports.RecordStore) *Planner {
	return &Planner{store: store}
}

// Plan compares inputs with the inputs of the last merge recorded under root.
func (p *Planner) Plan(root string, inputs map[string]domain.Fingerprint) (*Plan, error) {
	last, err := p.store.GetMerge(root)
	if err != nil {
		return nil, err
	}

	var previous map[string]domain.Fingerprint
	if last != nil {
		previous = last.Inputs
	}

	plan := &Plan{Inputs: maps.Clone(inputs)}
	for label, fp := range inputs {
		if old, ok := previous[label]; !ok || old != fp {
			plan.Changed = append(plan.Changed, label)
		}
	}
	for label := range previous {
		if _, ok := inputs[label]; !ok {
			plan.Removed = append(plan.Removed, label)
		}
	}
	slices.Sort(plan.Changed)
	slices.Sort(plan.Removed)

	return plan, nil
}

// Commit records the inputs of plan as the last merge.
func (p *Planner) Commit(root string, plan *Plan) error {
	return p.store.PutMerge(root, &domain.MergeRecord{
		Inputs:    maps.Clone(plan.Inputs),
		Timestamp: time.Now(),
	})
}
