package ports

import (
	"context"
	"time"
)

// Renderer displays build progress to the user. It decouples telemetry
// collection from presentation, so the same events drive either the
// interactive TUI or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start begins the renderer's lifecycle. Asynchronous renderers may
	// launch background goroutines.
	Start(ctx context.Context) error
	// Stop flushes buffered output and stops accepting events.
	Stop() error
	// Wait blocks until the renderer has terminated.
	Wait() error

	// OnPlanEmit is called once the rules of a build are known.
	OnPlanEmit(targets []string)
	// OnRuleStart is called when a rule begins executing.
	OnRuleStart(spanID, target string, startTime time.Time)
	// OnRuleLog is called with tool output produced while the rule runs.
	OnRuleLog(spanID string, data []byte)
	// OnRuleComplete is called when a rule finishes. err is nil on success
	// and cached reports that the rule was skipped as up to date.
	OnRuleComplete(spanID string, endTime time.Time, err error, cached bool)
}
