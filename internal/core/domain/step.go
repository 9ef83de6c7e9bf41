package domain

import (
	"iter"
	"slices"
	"strings"
)

// StepKind identifies the action a Step performs.
type StepKind string

const (
	// StepRemove deletes a path.
	StepRemove StepKind = "rm"
	// StepMkdir creates a directory and its parents.
	StepMkdir StepKind = "mkdir"
	// StepTranslate runs the dx translation tool.
	StepTranslate StepKind = "dx"
	// StepRecordMetadata writes cache metadata for the rule.
	StepRecordMetadata StepKind = "record"
)

// DxOption is a flag passed to the translation tool.
type DxOption string

const (
	// DxNoOptimize disables dx optimizations.
	DxNoOptimize DxOption = "NO_OPTIMIZE"
	// DxForceJumbo forces jumbo string instructions, required when the
	// output is later merged into a larger dex file.
	DxForceJumbo DxOption = "FORCE_JUMBO"
)

// Flag returns the command line form of the option.
func (o DxOption) Flag() string {
	return "--" + strings.ReplaceAll(strings.ToLower(string(o)), "_", "-")
}

// DxOptions is a sorted, duplicate free set of options.
type DxOptions []DxOption

// NewDxOptions creates a normalized option set.
func NewDxOptions(opts ...DxOption) DxOptions {
	set := slices.Clone(opts)
	slices.Sort(set)
	return slices.Compact(set)
}

// Has reports whether opt is part of the set.
func (o DxOptions) Has(opt DxOption) bool {
	return slices.Contains(o, opt)
}

// Flags returns the command line flags for every option in the set.
func (o DxOptions) Flags() []string {
	flags := make([]string, len(o))
	for i, opt := range o {
		flags[i] = opt.Flag()
	}
	return flags
}

// MetadataEntry is a single key/value pair persisted for a rule.
type MetadataEntry struct {
	Key   string
	Value string
}

// Step is one planned action. Only the fields relevant to Kind are set.
type Step struct {
	Kind StepKind
	// Name is a short human readable identifier, e.g. "record_empty_dx".
	Name string
	// Path is the file removed, the directory created or the dx output.
	Path string
	// Force makes a remove step ignore missing paths.
	Force bool
	// Inputs are the dx input paths.
	Inputs []string
	// Options are the dx flags.
	Options DxOptions
	// Metadata holds the entries written by a record step.
	Metadata []MetadataEntry
}

// Describe renders the step as a single shell-like line.
func (s *Step) Describe() string {
	var b strings.Builder
	switch s.Kind {
	case StepRemove:
		b.WriteString("rm ")
		if s.Force {
			b.WriteString("-f ")
		}
		b.WriteString(s.Path)
	case StepMkdir:
		b.WriteString("mkdir -p ")
		b.WriteString(s.Path)
	case StepTranslate:
		b.WriteString("dx --dex")
		for _, flag := range s.Options.Flags() {
			b.WriteString(" ")
			b.WriteString(flag)
		}
		b.WriteString(" --output ")
		b.WriteString(s.Path)
		for _, in := range s.Inputs {
			b.WriteString(" ")
			b.WriteString(in)
		}
	case StepRecordMetadata:
		b.WriteString(s.Name)
		for _, m := range s.Metadata {
			b.WriteString(" ")
			b.WriteString(m.Key)
			b.WriteString("=")
			b.WriteString(m.Value)
		}
	default:
		b.WriteString(string(s.Kind))
	}
	return b.String()
}

// StepSequence is an immutable, ordered list of steps.
type StepSequence struct {
	steps []Step
}

// NewStepSequence copies steps into a new sequence.
func NewStepSequence(steps ...Step) StepSequence {
	return StepSequence{steps: slices.Clone(steps)}
}

// Len returns the number of steps.
func (s StepSequence) Len() int {
	return len(s.steps)
}

// At returns the i-th step.
func (s StepSequence) At(i int) Step {
	return s.steps[i]
}

// All yields the steps in execution order.
func (s StepSequence) All() iter.Seq2[int, Step] {
	return func(yield func(int, Step) bool) {
		for i, step := range s.steps {
			if !yield(i, step) {
				return
			}
		}
	}
}

// Kinds returns the kind of each step in order.
func (s StepSequence) Kinds() []StepKind {
	kinds := make([]StepKind, len(s.steps))
	for i, step := range s.steps {
		kinds[i] = step.Kind
	}
	return kinds
}

// Contains reports whether any step has the given kind.
func (s StepSequence) Contains(kind StepKind) bool {
	return slices.Contains(s.Kinds(), kind)
}

// String renders one step per line.
func (s StepSequence) String() string {
	lines := make([]string, len(s.steps))
	for i := range s.steps {
		lines[i] = s.steps[i].Describe()
	}
	return strings.Join(lines, "\n")
}
