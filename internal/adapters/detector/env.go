// Package detector picks the output mode for a build from the environment.
package detector

import (
	"os"

	"go.trai.ch/predex/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive TUI renderer.
	ModeTUI
	// ModeLinear forces the linear CI renderer.
	ModeLinear
)

// String returns the flag value selecting the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode: the TUI on an
// interactive terminal, linear output in CI or when stdout is redirected.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the user's --output-mode flag to the detected mode.
// userFlag is one of "auto", "tui", "linear", "ci" or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) (OutputMode, error) {
	switch userFlag {
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	case "auto", "":
		return autoDetected, nil
	default:
		return ModeAuto, zerr.With(domain.ErrUnknownOutputMode, "mode", userFlag)
	}
}
