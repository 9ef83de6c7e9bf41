// Package app implements the application layer for predex.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/predex/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/predex/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/predex/internal/adapters/dx"        //nolint:depguard // Wired in app layer
	"go.trai.ch/predex/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/predex/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/predex/internal/adapters/tui"       //nolint:depguard // Wired in app layer
	"go.trai.ch/predex/internal/core/domain"
	"go.trai.ch/predex/internal/core/ports"
	"go.trai.ch/predex/internal/engine/merge"
	"go.trai.ch/predex/internal/engine/runner"
	"go.trai.ch/predex/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	logger       ports.Logger
	store        ports.RecordStore
	indexer      ports.ClassIndexer
	fs           ports.Filesystem
	stdout       io.Writer
	stderr       io.Writer
	teaOptions   []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	log ports.Logger,
	store ports.RecordStore,
	indexer ports.ClassIndexer,
	fs ports.Filesystem,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		logger:       log,
		store:        store,
		indexer:      indexer,
		fs:           fs,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput redirects the build progress output.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	NoCache bool
	// Parallelism defaults to the number of CPUs when zero.
	Parallelism int
	// OutputMode is "auto", "tui" or "linear". Empty means auto.
	OutputMode string
}

// Build pre-dexes every library of the workspace found from the current
// directory and records the inputs of the merge that must follow.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	ws, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	renderer, err := a.newRenderer(opts.OutputMode)
	if err != nil {
		return err
	}
	provider := telemetry.NewProvider(renderer)
	defer func() {
		_ = provider.Shutdown(ctx)
	}()
	tracer := telemetry.NewOTelTracer(provider).WithRenderer(renderer)

	translator, err := dx.NewTranslator(a.executor, ws.Translator, ws.Root, ws.Environment)
	if err != nil {
		return err
	}

	sched := scheduler.New(
		runner.New(a.fs, translator, tracer),
		a.indexer,
		a.store,
		a.fs,
		tracer,
		func(target domain.BuildTarget) ports.RecordSession {
			return cas.NewRecorder(a.store, ws.Root, target)
		},
	)

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	if err := renderer.Start(ctx); err != nil {
		return zerr.Wrap(err, "failed to start renderer")
	}
	report, err := sched.Run(ctx, ws, scheduler.Options{
		Parallelism: parallelism,
		NoCache:     opts.NoCache,
	})
	_ = renderer.Stop()
	if errWait := renderer.Wait(); errWait != nil {
		a.logger.Warn(fmt.Sprintf("renderer exited with error: %v", errWait))
	}
	if report == nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("%d completed, %d cached, %d failed",
		report.Count(domain.RuleStatusCompleted),
		report.Count(domain.RuleStatusCached),
		report.Count(domain.RuleStatusFailed),
	))
	if err != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}

	return a.recordMerge(ws.Root, report)
}

func (a *App) newRenderer(outputMode string) (ports.Renderer, error) {
	mode, err := detector.ResolveMode(detector.DetectEnvironment(), outputMode)
	if err != nil {
		return nil, err
	}
	if mode == detector.ModeTUI {
		return tui.NewRenderer(tui.NewModel(a.stderr), a.teaOptions...), nil
	}
	return linear.NewRenderer(a.stdout, a.stderr), nil
}

func (a *App) recordMerge(root string, report *scheduler.Report) error {
	planner := merge.NewPlanner(a.store)
	plan, err := planner.Plan(root, report.Outputs())
	if err != nil {
		return zerr.Wrap(err, "failed to plan merge")
	}

	if !plan.NeedsMerge() {
		a.logger.Info("merged dex is up to date")
		return nil
	}

	a.logger.Info(fmt.Sprintf("merge required: %d changed, %d removed", len(plan.Changed), len(plan.Removed)))
	if err := planner.Commit(root, plan); err != nil {
		return zerr.Wrap(err, "failed to record merge inputs")
	}
	return nil
}

// Plan indexes the workspace and writes the steps each rule would execute
// to w without running them.
func (a *App) Plan(ctx context.Context, w io.Writer) error {
	ws, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	tracer := telemetry.NewNoOpTracer()
	sched := scheduler.New(runner.New(a.fs, nil, tracer), a.indexer, a.store, a.fs, tracer, nil)

	rules, err := sched.Prepare(ctx, ws)
	if err != nil {
		return err
	}

	for _, r := range rules {
		steps, err := r.PlanSteps()
		if err != nil {
			return zerr.With(err, "target", r.Target().String())
		}
		_, _ = fmt.Fprintln(w, r.Target())
		for _, step := range steps.All() {
			_, _ = fmt.Fprintf(w, "  %s\n", step.Describe())
		}
	}
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Store removes the recorded fingerprints.
	Store bool
	// Output removes the generated dex jars.
	Output bool
}

// Clean removes the record store and generated artifacts based on the
// provided options.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	ws, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	var errs error

	remove := func(name string, fn func() error) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := fn(); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	if options.Store {
		remove("record store", func() error {
			return a.store.Clear(ws.Root)
		})
	}

	if options.Output {
		remove("generated dex files", func() error {
			return a.fs.Remove(ws.GenDir, true)
		})
	}

	return errs
}
