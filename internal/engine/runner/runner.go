// Package runner executes a rule's planned steps.
package runner

import (
	"context"
	"io"

	"go.trai.ch/predex/internal/core/domain"
	"go.trai.ch/predex/internal/core/ports"
	"go.trai.ch/zerr"
)

// Result describes a finished rule execution.
type Result struct {
	Target      domain.BuildTarget
	State       domain.RuleState
	Output      domain.OutputPath
	Fingerprint domain.Fingerprint
}

// Runner interprets a StepSequence against the filesystem, the translation
// tool and an artifact recorder. Steps run strictly in order and the first
// failure halts the sequence. Nothing is retried.
type Runner struct {
	fs         ports.Filesystem
	translator ports.Translator
	tracer     ports.Tracer
}

// New creates a new Runner.
func New(fs ports.Filesystem, translator ports.Translator, tracer ports.Tracer) *Runner {
	return &Runner{
		fs:         fs,
		translator: translator,
		tracer:     tracer,
	}
}

// Execute plans rule and runs its steps, writing artifacts and metadata to rec.
func (r *Runner) Execute(ctx context.Context, rule ports.Buildable, rec ports.ArtifactRecorder) (Result, error) {
	target := rule.Target()
	ctx, span := r.tracer.Start(ctx, target.String(), ports.WithAttribute(ports.AttrTarget, target.String()))
	defer span.End()

	exec := &execution{
		runner: r,
		rule:   rule,
		rec:    rec,
		state:  domain.RuleUnplanned,
	}

	err := exec.run(ctx)
	span.SetAttribute(ports.AttrState, string(exec.state))
	if err != nil {
		span.RecordError(err)
		return Result{Target: target, State: exec.state}, zerr.With(err, "target", target.String())
	}

	fp, err := rule.DependencyFingerprint()
	if err != nil {
		return Result{Target: target, State: exec.state}, err
	}
	output, err := rule.PathToOutput()
	if err != nil {
		return Result{Target: target, State: exec.state}, err
	}

	return Result{
		Target:      target,
		State:       exec.state,
		Output:      output,
		Fingerprint: fp,
	}, nil
}

// execution tracks the state machine of a single rule run.
type execution struct {
	runner *Runner
	rule   ports.Buildable
	rec    ports.ArtifactRecorder

	state      domain.RuleState
	translated bool
}

func (e *execution) run(ctx context.Context) error {
	plan, err := e.rule.PlanSteps()
	if err != nil {
		return e.fail(err)
	}
	if err := e.advance(domain.RulePlanned); err != nil {
		return err
	}
	if err := e.advance(domain.RuleExecuting); err != nil {
		return err
	}

	for i, step := range plan.All() {
		if err := ctx.Err(); err != nil {
			return e.fail(err)
		}

		if err := e.runStep(ctx, step); err != nil {
			return e.fail(zerr.With(zerr.With(err, "step", step.Describe()), "step_index", i))
		}
	}

	if e.state == domain.RuleExecuting {
		return e.advance(e.succeeded())
	}
	return nil
}

func (e *execution) runStep(ctx context.Context, step domain.Step) error {
	ctx, span := e.runner.tracer.Start(ctx, step.Describe(), ports.WithAttribute(ports.AttrStep, string(step.Kind)))
	defer span.End()

	err := e.dispatch(ctx, step, span)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// dispatch performs step. Tool output is written to log.
func (e *execution) dispatch(ctx context.Context, step domain.Step, log io.Writer) error {
	switch step.Kind {
	case domain.StepRemove:
		if err := e.runner.fs.Remove(step.Path, step.Force); err != nil {
			return zerr.Wrap(err, domain.ErrFilesystem.Error())
		}
	case domain.StepMkdir:
		if err := e.runner.fs.EnsureDirectory(step.Path); err != nil {
			return zerr.Wrap(err, domain.ErrFilesystem.Error())
		}
	case domain.StepTranslate:
		if err := e.runner.translator.Translate(ctx, step.Inputs, step.Options, step.Path, log); err != nil {
			return zerr.Wrap(err, domain.ErrToolInvocation.Error())
		}
		e.translated = true
		if err := e.rec.RecordArtifact(step.Path); err != nil {
			return zerr.Wrap(err, domain.ErrRecordMetadataFailed.Error())
		}
	case domain.StepRecordMetadata:
		if err := e.advance(e.succeeded()); err != nil {
			return err
		}
		for _, entry := range step.Metadata {
			if err := e.rec.AddMetadata(entry.Key, entry.Value); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrRecordMetadataFailed.Error()), "key", entry.Key)
			}
		}
		return e.advance(domain.RuleMetadataRecorded)
	default:
		return zerr.With(domain.ErrUnknownStep, "kind", string(step.Kind))
	}
	return nil
}

func (e *execution) succeeded() domain.RuleState {
	if e.translated {
		return domain.RuleSucceededWithArtifact
	}
	return domain.RuleSucceededWithoutArtifact
}

func (e *execution) advance(next domain.RuleState) error {
	if !e.state.CanTransition(next) {
		return zerr.With(zerr.With(domain.ErrInvalidStateTransition, "from", string(e.state)), "to", string(next))
	}
	e.state = next
	return nil
}

// fail moves the execution to the terminal failed state and returns err.
func (e *execution) fail(err error) error {
	if !e.state.IsTerminal() {
		e.state = domain.RuleFailed
	}
	return err
}
