// Package telemetry implements ports.Tracer on top of OpenTelemetry.
package telemetry

import (
	"bytes"
	"sync"
	"time"

	"go.trai.ch/zerr"
)

// ErrBatcherClosed is returned when writing to a closed BatchProcessor.
var ErrBatcherClosed = zerr.New("batch processor is closed")

const (
	// DefaultSizeLimit is the number of pending bytes that forces a flush.
	DefaultSizeLimit = 4096
	// DefaultTimeLimit is how long output may stay pending.
	DefaultTimeLimit = 50 * time.Millisecond
)

// BatchProcessor coalesces tool output into chunks before handing them to
// the renderer. A chunk is emitted once sizeLimit bytes are pending or
// timeLimit after the first pending byte, whichever comes first.
//
// Size-triggered flushes stop at the last complete line when there is one,
// so the renderers rarely see a dx line split across two chunks.
type BatchProcessor struct {
	sizeLimit int
	timeLimit time.Duration
	onFlush   func([]byte)

	mu      sync.Mutex
	pending bytes.Buffer
	timer   *time.Timer
	closed  bool
}

// NewBatchProcessor returns a BatchProcessor that calls onFlush with each
// chunk. Non-positive limits fall back to the defaults.
func NewBatchProcessor(sizeLimit int, timeLimit time.Duration, onFlush func([]byte)) *BatchProcessor {
	if sizeLimit <= 0 {
		sizeLimit = DefaultSizeLimit
	}
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}
	return &BatchProcessor{
		sizeLimit: sizeLimit,
		timeLimit: timeLimit,
		onFlush:   onFlush,
	}
}

// Write appends p to the pending chunk.
func (bp *BatchProcessor) Write(p []byte) (int, error) {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.closed {
		return 0, ErrBatcherClosed
	}

	n, _ := bp.pending.Write(p)

	if bp.pending.Len() >= bp.sizeLimit {
		bp.emitLocked(completeLines(bp.pending.Bytes()))
	}
	if bp.pending.Len() > 0 && bp.timer == nil {
		bp.timer = time.AfterFunc(bp.timeLimit, bp.Flush)
	}
	return n, nil
}

// Flush emits everything that is pending.
func (bp *BatchProcessor) Flush() {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.closed {
		return
	}
	bp.emitLocked(bp.pending.Len())
}

// Close emits the pending chunk and rejects further writes.
func (bp *BatchProcessor) Close() error {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.closed {
		return nil
	}
	bp.closed = true
	bp.emitLocked(bp.pending.Len())
	return nil
}

// emitLocked hands the first n pending bytes to onFlush. It runs under mu so
// chunks stay ordered, which means onFlush must not block.
func (bp *BatchProcessor) emitLocked(n int) {
	if n == 0 {
		return
	}
	chunk := bytes.Clone(bp.pending.Next(n))
	if bp.pending.Len() == 0 && bp.timer != nil {
		bp.timer.Stop()
		bp.timer = nil
	}
	if bp.onFlush != nil {
		bp.onFlush(chunk)
	}
}

// completeLines returns the length of p up to and including its last
// newline, or len(p) if p holds no newline.
func completeLines(p []byte) int {
	if i := bytes.LastIndexByte(p, '\n'); i >= 0 {
		return i + 1
	}
	return len(p)
}
