package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/predex/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
//
//nolint:gocritic // hugeParam ignored
func NewRenderer(model Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnPlanEmit forwards the planned rules to the TUI.
func (r *Renderer) OnPlanEmit(targets []string) {
	r.program.Send(msgPlan{Targets: targets})
}

// OnRuleStart forwards rule start events to the TUI.
func (r *Renderer) OnRuleStart(spanID, target string, startTime time.Time) {
	r.program.Send(msgRuleStart{SpanID: spanID, Target: target, StartTime: startTime})
}

// OnRuleLog forwards tool output to the TUI.
func (r *Renderer) OnRuleLog(spanID string, data []byte) {
	r.program.Send(msgRuleLog{SpanID: spanID, Data: data})
}

// OnRuleComplete forwards rule completion events to the TUI.
func (r *Renderer) OnRuleComplete(spanID string, endTime time.Time, err error, cached bool) {
	r.program.Send(msgRuleComplete{SpanID: spanID, EndTime: endTime, Err: err, Cached: cached})
}
