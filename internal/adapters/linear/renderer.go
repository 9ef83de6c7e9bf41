// Package linear prints build progress as prefixed, chronological lines.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/predex/internal/ui/output"
	"go.trai.ch/predex/internal/ui/style"
)

// Renderer implements ports.Renderer. Tool output goes to stdout prefixed with
// the rule's target, status lines go to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output

	mu      sync.Mutex
	rules   map[string]*ruleState
	pending map[string]*bytes.Buffer
}

type ruleState struct {
	target    string
	startTime time.Time
}

// NewRenderer creates a Renderer. Nil writers default to os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		out:     output.New(stderr),
		rules:   make(map[string]*ruleState),
		pending: make(map[string]*bytes.Buffer),
	}
}

// OnPlanEmit prints the number of rules about to run.
func (r *Renderer) OnPlanEmit(targets []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "%s Pre-dexing %d librar%s\n",
		output.Colorize(r.out, style.Arrow, string(style.Iris)), len(targets), plural(len(targets)))
}

// OnRuleStart registers the rule and prints a start line.
func (r *Renderer) OnRuleStart(spanID, target string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules[spanID] = &ruleState{target: target, startTime: startTime}
	r.pending[spanID] = new(bytes.Buffer)

	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", r.prefix(target))
}

// OnRuleLog prints every complete line in data and keeps the remainder until
// the next write or the end of the rule.
func (r *Renderer) OnRuleLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rule, ok := r.rules[spanID]
	if !ok {
		return
	}

	buf := r.pending[spanID]
	buf.Write(data)
	for {
		i := bytes.IndexByte(buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		r.printLineLocked(rule.target, buf.Next(i+1))
	}
}

// OnRuleComplete flushes any partial line and prints the outcome.
func (r *Renderer) OnRuleComplete(spanID string, endTime time.Time, err error, cached bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rule, ok := r.rules[spanID]
	if !ok {
		return
	}

	if buf := r.pending[spanID]; buf.Len() > 0 {
		r.printLineLocked(rule.target, buf.Bytes())
	}

	duration := endTime.Sub(rule.startTime).Round(time.Millisecond)
	switch {
	case err != nil:
		symbol := output.Colorize(r.out, style.Cross, string(style.Red))
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", r.prefix(rule.target), symbol, duration, err)
	case cached:
		symbol := output.Colorize(r.out, style.Tilde, string(style.Slate))
		_, _ = fmt.Fprintf(r.stderr, "%s %s Up to date\n", r.prefix(rule.target), symbol)
	default:
		symbol := output.Colorize(r.out, style.Check, string(style.Green))
		_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", r.prefix(rule.target), symbol, duration)
	}

	delete(r.rules, spanID)
	delete(r.pending, spanID)
}

// Start does nothing; lines are printed as events arrive.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop prints whatever partial output is still pending.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spanID, buf := range r.pending {
		if buf.Len() > 0 {
			r.printLineLocked(r.rules[spanID].target, buf.Bytes())
			buf.Reset()
		}
	}
	return nil
}

// Wait returns immediately.
func (r *Renderer) Wait() error {
	return nil
}

func (r *Renderer) prefix(target string) string {
	return r.out.String("[" + target + "]").Faint().String()
}

// printLineLocked must be called with r.mu held.
func (r *Renderer) printLineLocked(target string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", target, line)
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
