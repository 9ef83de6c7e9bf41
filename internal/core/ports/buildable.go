// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/predex/internal/core/domain"

// ClassFileLibrary is an upstream rule that compiles classes into a jar or
// class directory.
//
//go:generate mockgen -source=buildable.go -destination=mocks/mock_buildable.go -package=mocks
type ClassFileLibrary interface {
	// Target returns the library's build target.
	Target() domain.BuildTarget

	// OutputPath returns the path of the compiled library.
	OutputPath() string

	// ClassIndex returns the classes the library contains.
	// Callers must only invoke this after the library has been built;
	// implementations return domain.ErrLibraryNotBuilt otherwise.
	ClassIndex() (domain.ClassIndex, error)
}

// Buildable is a rule that can plan its own steps and describe its output.
type Buildable interface {
	// Target returns the rule's build target.
	Target() domain.BuildTarget

	// InputsToCompareToOutput returns files whose contents affect the rule's
	// cache key beyond what its dependencies already capture.
	InputsToCompareToOutput() []string

	// PlanSteps builds the rule's step sequence without side effects.
	PlanSteps() (domain.StepSequence, error)

	// HasOutput reports whether executing the rule produces an artifact.
	HasOutput() (bool, error)

	// PathToOutput returns the artifact path, or domain.NoOutput when the rule
	// produces nothing.
	PathToOutput() (domain.OutputPath, error)

	// DependencyFingerprint returns the ABI key of the rule's dependencies.
	DependencyFingerprint() (domain.Fingerprint, error)
}
