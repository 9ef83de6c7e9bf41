// Package rule implements the dex rule that pre-dexes a compiled library.
package rule

import (
	"path/filepath"

	"go.trai.ch/predex/internal/core/domain"
	"go.trai.ch/predex/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Buildable = (*DexRule)(nil)

const (
	recordSuccessStep = "record_dx_success"
	recordEmptyStep   = "record_empty_dx"
)

// dexOptions are passed to every translation. Jumbo mode is required because
// the output is later merged into a larger dex file.
var dexOptions = domain.NewDxOptions(domain.DxNoOptimize, domain.DxForceJumbo)

// DexRule produces a .dex.jar from the classes of an upstream library.
// A library without classes produces nothing, since dx has no representation
// for an empty dex file, but the rule still records its fingerprint.
type DexRule struct {
	target  domain.BuildTarget
	library ports.ClassFileLibrary
	genDir  string
}

// NewDexRule creates a DexRule for target. genDir is the root under which
// generated artifacts are written.
func NewDexRule(target domain.BuildTarget, library ports.ClassFileLibrary, genDir string) (*DexRule, error) {
	if target.IsZero() {
		return nil, zerr.With(domain.ErrPreconditionViolation, "field", "target")
	}
	if library == nil {
		return nil, zerr.With(zerr.With(domain.ErrPreconditionViolation, "field", "library"), "target", target.String())
	}
	if genDir == "" {
		genDir = domain.DefaultGenDir
	}

	return &DexRule{
		target:  target,
		library: library,
		genDir:  genDir,
	}, nil
}

// Target returns the rule's build target.
func (r *DexRule) Target() domain.BuildTarget {
	return r.target
}

// Library returns the upstream library.
func (r *DexRule) Library() ports.ClassFileLibrary {
	return r.library
}

// PathToDex returns where the dex jar is written. It depends only on the
// target, never on whether the jar is produced.
func (r *DexRule) PathToDex() string {
	return domain.DexPath(r.genDir, r.target)
}

// InputsToCompareToOutput is always empty. Invalidation is driven by the
// dependency fingerprint.
func (r *DexRule) InputsToCompareToOutput() []string {
	return []string{}
}

// PlanSteps returns the rule's steps: remove the old output, create the output
// directory, translate if there is anything to translate, record metadata.
func (r *DexRule) PlanSteps() (domain.StepSequence, error) {
	index, err := r.classIndex()
	if err != nil {
		return domain.StepSequence{}, err
	}

	output := r.PathToDex()
	entries := r.metadata(index.Fingerprint())

	steps := []domain.Step{
		{Kind: domain.StepRemove, Path: output, Force: true},
		{Kind: domain.StepMkdir, Path: filepath.Dir(output)},
	}

	name := recordEmptyStep
	if !index.IsEmpty() {
		name = recordSuccessStep
		steps = append(steps, domain.Step{
			Kind:    domain.StepTranslate,
			Path:    output,
			Inputs:  []string{r.library.OutputPath()},
			Options: dexOptions,
		})
	}

	steps = append(steps, domain.Step{
		Kind:     domain.StepRecordMetadata,
		Name:     name,
		Metadata: entries,
	})

	return domain.NewStepSequence(steps...), nil
}

// HasOutput reports whether the upstream library contains any classes.
func (r *DexRule) HasOutput() (bool, error) {
	index, err := r.classIndex()
	if err != nil {
		return false, err
	}
	return !index.IsEmpty(), nil
}

// PathToOutput returns the dex jar path, or domain.NoOutput when the library
// is empty.
func (r *DexRule) PathToOutput() (domain.OutputPath, error) {
	ok, err := r.HasOutput()
	if err != nil {
		return domain.NoOutput(), err
	}
	if !ok {
		return domain.NoOutput(), nil
	}
	return domain.SomeOutput(r.PathToDex()), nil
}

// DependencyFingerprint returns the upstream library's ABI key unchanged.
func (r *DexRule) DependencyFingerprint() (domain.Fingerprint, error) {
	index, err := r.classIndex()
	if err != nil {
		return "", err
	}
	return index.Fingerprint(), nil
}

// metadata records the dependency fingerprint under both keys. An empty dex
// has no content of its own to hash, so the output key reuses it.
func (r *DexRule) metadata(fp domain.Fingerprint) []domain.MetadataEntry {
	return []domain.MetadataEntry{
		{Key: domain.MetadataKeyABIKeyForDeps, Value: fp.String()},
		{Key: domain.MetadataKeyABIKey, Value: fp.String()},
	}
}

func (r *DexRule) classIndex() (domain.ClassIndex, error) {
	index, err := r.library.ClassIndex()
	if err != nil {
		return domain.ClassIndex{}, zerr.With(err, "rule", r.target.String())
	}
	return index, nil
}
