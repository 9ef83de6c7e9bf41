// Package dx drives the external dx tool that converts class files to dex.
package dx

import (
	"context"
	"io"
	"slices"

	"go.trai.ch/predex/internal/core/domain"
	"go.trai.ch/predex/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Translator = (*Translator)(nil)

// Translator implements ports.Translator by running a configured dx command
// through a ports.Executor.
type Translator struct {
	executor ports.Executor
	command  []string
	dir      string
	env      map[string]string
}

// NewTranslator creates a Translator. command is the tool prefix, e.g.
// ["dx"] or ["java", "-jar", "dx.jar"]. The tool runs in dir.
func NewTranslator(executor ports.Executor, command []string, dir string, env map[string]string) (*Translator, error) {
	if len(command) == 0 || command[0] == "" {
		return nil, domain.ErrMissingTranslator
	}
	return &Translator{
		executor: executor,
		command:  slices.Clone(command),
		dir:      dir,
		env:      env,
	}, nil
}

// Args returns the full command line for a translation.
func (t *Translator) Args(inputs []string, opts domain.DxOptions, output string) []string {
	args := slices.Clone(t.command)
	args = append(args, "--dex")
	args = append(args, opts.Flags()...)
	args = append(args, "--output", output)
	return append(args, inputs...)
}

// Translate runs dx and streams its output to log.
func (t *Translator) Translate(ctx context.Context, inputs []string, opts domain.DxOptions, output string, log io.Writer) error {
	if len(inputs) == 0 {
		return zerr.With(domain.ErrPreconditionViolation, "field", "inputs")
	}

	cmd := &domain.Command{
		Args:        t.Args(inputs, opts, output),
		Environment: t.env,
		WorkingDir:  t.dir,
	}
	if err := t.executor.Execute(ctx, cmd, log, log); err != nil {
		return zerr.With(err, "output", output)
	}
	return nil
}
