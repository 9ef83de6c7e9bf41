// Package scheduler indexes the libraries of a workspace and runs their dex
// rules.
package scheduler

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/predex/internal/core/domain"
	"go.trai.ch/predex/internal/core/ports"
	"go.trai.ch/predex/internal/engine/library"
	"go.trai.ch/predex/internal/engine/rule"
	"go.trai.ch/predex/internal/engine/runner"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// RecorderFactory creates the record session for one rule execution.
type RecorderFactory func(target domain.BuildTarget) ports.RecordSession

// Options control a build.
type Options struct {
	// Parallelism is the maximum number of rules executing at once.
	// Values below one run rules sequentially.
	Parallelism int
	// NoCache executes every rule even if its fingerprint is unchanged.
	NoCache bool
}

// RuleReport is the outcome of one rule within a build.
type RuleReport struct {
	Target      domain.BuildTarget
	Status      domain.RuleStatus
	State       domain.RuleState
	Output      domain.OutputPath
	Fingerprint domain.Fingerprint
	Err         error
}

// Report is the outcome of a build, one entry per library in dependency order.
type Report struct {
	Rules []RuleReport
}

// Outputs returns the fingerprint of every rule that has a dex artifact,
// keyed by target label. Failed rules are left out.
func (r *Report) Outputs() map[string]domain.Fingerprint {
	outputs := make(map[string]domain.Fingerprint)
	for _, rule := range r.Rules {
		if rule.Status == domain.RuleStatusFailed || !rule.Output.IsPresent() {
			continue
		}
		outputs[rule.Target.String()] = rule.Fingerprint
	}
	return outputs
}

// Count returns how many rules ended with status.
func (r *Report) Count(status domain.RuleStatus) int {
	n := 0
	for _, rule := range r.Rules {
		if rule.Status == status {
			n++
		}
	}
	return n
}

// Scheduler builds one dex rule per library and executes them.
type Scheduler struct {
	runner      *runner.Runner
	indexer     ports.ClassIndexer
	store       ports.RecordStore
	fs          ports.Filesystem
	tracer      ports.Tracer
	newRecorder RecorderFactory

	mu         sync.RWMutex
	ruleStatus map[domain.BuildTarget]domain.RuleStatus
}

// New creates a new Scheduler.
func New(
	rn *runner.Runner,
	indexer ports.ClassIndexer,
	store ports.RecordStore,
	fs ports.Filesystem,
	tracer ports.Tracer,
	newRecorder RecorderFactory,
) *Scheduler {
	return &Scheduler{
		runner:      rn,
		indexer:     indexer,
		store:       store,
		fs:          fs,
		tracer:      tracer,
		newRecorder: newRecorder,
		ruleStatus:  make(map[domain.BuildTarget]domain.RuleStatus),
	}
}

// Status returns the status of target in the current or last build.
func (s *Scheduler) Status(target domain.BuildTarget) domain.RuleStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ruleStatus[target]
}

func (s *Scheduler) updateStatus(target domain.BuildTarget, status domain.RuleStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ruleStatus[target] = status
}

// Prepare indexes every library of ws in dependency order and returns one
// dex rule per library. A library's fingerprint folds in the fingerprints of
// its dependencies, so dependencies are always indexed first.
func (s *Scheduler) Prepare(ctx context.Context, ws *domain.Workspace) ([]*rule.DexRule, error) {
	fingerprints := make(map[domain.BuildTarget]domain.Fingerprint, ws.Graph.Len())
	rules := make([]*rule.DexRule, 0, ws.Graph.Len())

	for spec := range ws.Graph.Walk() {
		deps := make([]domain.Fingerprint, len(spec.Deps))
		for i, dep := range spec.Deps {
			deps[i] = fingerprints[dep]
		}

		lib := library.New(spec, spec.Output, s.indexer)
		if err := s.index(ctx, lib, deps); err != nil {
			return nil, err
		}

		index, err := lib.ClassIndex()
		if err != nil {
			return nil, err
		}
		fingerprints[spec.Target] = index.Fingerprint()

		r, err := rule.NewDexRule(spec.Target, lib, ws.GenDir)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}

	return rules, nil
}

func (s *Scheduler) index(ctx context.Context, lib *library.Library, deps []domain.Fingerprint) error {
	ctx, span := s.tracer.Start(ctx, "index "+lib.Target().String())
	defer span.End()

	if err := lib.Index(ctx, deps); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Run prepares the rules of ws and executes them, at most
// opts.Parallelism at a time. Every rule runs even if another one fails.
// The returned error joins the failures of all rules.
func (s *Scheduler) Run(ctx context.Context, ws *domain.Workspace, opts Options) (*Report, error) {
	rules, err := s.Prepare(ctx, ws)
	if err != nil {
		return nil, err
	}

	targets := make([]string, len(rules))
	for i, r := range rules {
		targets[i] = r.Target().String()
		s.updateStatus(r.Target(), domain.RuleStatusPending)
	}
	s.tracer.EmitPlan(ctx, targets)

	reports := make([]RuleReport, len(rules))
	var g errgroup.Group
	g.SetLimit(max(opts.Parallelism, 1))
	for i, r := range rules {
		g.Go(func() error {
			reports[i] = s.runRule(ctx, ws.Root, r, opts.NoCache)
			return nil
		})
	}
	_ = g.Wait()

	var errs error
	for _, rep := range reports {
		if rep.Err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(rep.Err, domain.ErrRuleExecutionFailed.Error()), "target", rep.Target.String()))
		}
	}

	return &Report{Rules: reports}, errs
}

func (s *Scheduler) runRule(ctx context.Context, root string, r *rule.DexRule, noCache bool) RuleReport {
	target := r.Target()
	s.updateStatus(target, domain.RuleStatusRunning)

	fail := func(err error) RuleReport {
		s.updateStatus(target, domain.RuleStatusFailed)
		return RuleReport{Target: target, Status: domain.RuleStatusFailed, State: domain.RuleFailed, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	if !noCache {
		hit, err := s.checkCache(root, r)
		if err != nil {
			return fail(err)
		}
		if hit {
			return s.reportCached(ctx, r)
		}
	}

	// The first step removes the previous dex jar, so the previous record
	// must not outlive it if this run fails.
	if err := s.store.Delete(root, target); err != nil {
		return fail(err)
	}

	rec := s.newRecorder(target)
	res, err := s.runner.Execute(ctx, r, rec)
	if err != nil {
		return fail(err)
	}
	if err := rec.Commit(); err != nil {
		return fail(err)
	}

	s.updateStatus(target, domain.RuleStatusCompleted)
	return RuleReport{
		Target:      target,
		Status:      domain.RuleStatusCompleted,
		State:       res.State,
		Output:      res.Output,
		Fingerprint: res.Fingerprint,
	}
}

// checkCache reports whether the stored fingerprint of r matches the current
// one and, if r produces a dex jar, the jar is still in place.
func (s *Scheduler) checkCache(root string, r *rule.DexRule) (bool, error) {
	record, err := s.store.Get(root, r.Target())
	if err != nil {
		return false, err
	}
	stored, ok := record.ABIKeyForDeps()
	if !ok {
		return false, nil
	}

	fp, err := r.DependencyFingerprint()
	if err != nil {
		return false, err
	}
	if stored != fp {
		return false, nil
	}

	hasOutput, err := r.HasOutput()
	if err != nil {
		return false, err
	}
	if !hasOutput {
		return true, nil
	}
	return s.fs.Exists(r.PathToDex())
}

func (s *Scheduler) reportCached(ctx context.Context, r *rule.DexRule) RuleReport {
	target := r.Target()
	_, span := s.tracer.Start(ctx, target.String(), ports.WithAttribute(ports.AttrTarget, target.String()))
	span.SetAttribute(ports.AttrCached, true)
	span.End()

	// Prepare indexed the library, so neither call can fail.
	output, _ := r.PathToOutput()
	fp, _ := r.DependencyFingerprint()

	s.updateStatus(target, domain.RuleStatusCached)
	return RuleReport{
		Target:      target,
		Status:      domain.RuleStatusCached,
		State:       domain.RuleMetadataRecorded,
		Output:      output,
		Fingerprint: fp,
	}
}
