package telemetry_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/predex/internal/adapters/telemetry"
)

type collector struct {
	mu   sync.Mutex
	data []byte
	n    int
}

func (c *collector) flush(p []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = append(c.data, p...)
	c.n++
}

func (c *collector) snapshot() (string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.data), c.n
}

func TestBatchProcessor_FlushOnSize(t *testing.T) {
	c := &collector{}
	bp := telemetry.NewBatchProcessor(5, time.Hour, c.flush)
	defer func() { _ = bp.Close() }()

	_, err := bp.Write([]byte("123"))
	require.NoError(t, err)
	got, _ := c.snapshot()
	assert.Empty(t, got)

	// Crossing the size limit flushes synchronously.
	_, err = bp.Write([]byte("456"))
	require.NoError(t, err)
	got, calls := c.snapshot()
	assert.Equal(t, "123456", got)
	assert.Equal(t, 1, calls)
}

func TestBatchProcessor_FlushOnTime(t *testing.T) {
	c := &collector{}
	bp := telemetry.NewBatchProcessor(100, 20*time.Millisecond, c.flush)
	defer func() { _ = bp.Close() }()

	_, err := bp.Write([]byte("dx"))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		got, _ := c.snapshot()
		return got == "dx"
	}, time.Second, 5*time.Millisecond)
}

func TestBatchProcessor_ManualFlush(t *testing.T) {
	c := &collector{}
	bp := telemetry.NewBatchProcessor(100, time.Hour, c.flush)
	defer func() { _ = bp.Close() }()

	_, err := bp.Write([]byte("hello"))
	require.NoError(t, err)
	bp.Flush()

	got, _ := c.snapshot()
	assert.Equal(t, "hello", got)

	// An empty buffer does not call onFlush.
	bp.Flush()
	_, calls := c.snapshot()
	assert.Equal(t, 1, calls)
}

func TestBatchProcessor_CloseFlushes(t *testing.T) {
	c := &collector{}
	bp := telemetry.NewBatchProcessor(100, time.Hour, c.flush)

	_, err := bp.Write([]byte("pending"))
	require.NoError(t, err)
	require.NoError(t, bp.Close())

	got, _ := c.snapshot()
	assert.Equal(t, "pending", got)

	_, err = bp.Write([]byte("late"))
	require.ErrorIs(t, err, telemetry.ErrBatcherClosed)

	// Close is idempotent.
	require.NoError(t, bp.Close())
}

func TestBatchProcessor_ConcurrentWriters(t *testing.T) {
	c := &collector{}
	bp := telemetry.NewBatchProcessor(20, 5*time.Millisecond, c.flush)

	const workers, iterations = 8, 100
	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for j := range iterations {
				_, _ = bp.Write([]byte("a"))
				if j%10 == 0 {
					bp.Flush()
				}
			}
		})
	}
	wg.Wait()
	require.NoError(t, bp.Close())

	got, _ := c.snapshot()
	assert.Len(t, got, workers*iterations)
}

func TestBatchProcessor_SizeFlushKeepsPartialLine(t *testing.T) {
	c := &collector{}
	bp := telemetry.NewBatchProcessor(8, time.Hour, c.flush)
	defer func() { _ = bp.Close() }()

	_, err := bp.Write([]byte("line one\nprocess"))
	require.NoError(t, err)

	got, calls := c.snapshot()
	assert.Equal(t, "line one\n", got)
	assert.Equal(t, 1, calls)

	bp.Flush()
	got, _ = c.snapshot()
	assert.Equal(t, "line one\nprocess", got)
}
