package worker

import (
	"sync/atomic"
	"testing"
	"time"
)

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(4, 10, countingProcessFunc(&processed))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{FEN: "8/8/8/8/8/8/8/8 w - - 0 1", Index: i})
	}

	go pool.Close()

	resultCount := collectResults(pool)
	if resultCount != numItems {
		t.Errorf("results = %d; want %d", resultCount, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolSingleWorker tests pool with single worker.
func TestPoolSingleWorker(t *testing.T) {
	pool := NewPool(1, 5, noopProcessFunc())
	pool.Start()

	const numItems = 5
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(2, 100, slowProcessFunc)
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if got := atomic.LoadInt32(&processedCount); got >= numItems {
		t.Errorf("processed = %d; want fewer than %d after early stop", got, numItems)
	}
}

// TestPoolTrySubmit tests non-blocking submission.
func TestPoolTrySubmit(t *testing.T) {
	pool := NewPool(1, 1, noopProcessFunc())

	// Nothing consumes the work channel before Start, so only the
	// buffered item fits.
	if !pool.TrySubmit(WorkItem{Index: 0}) {
		t.Error("first TrySubmit should succeed")
	}
	if pool.TrySubmit(WorkItem{Index: 1}) {
		t.Error("second TrySubmit should fail with a full buffer")
	}

	pool.Stop()
	if pool.TrySubmit(WorkItem{Index: 2}) {
		t.Error("TrySubmit should fail after Stop")
	}

	pool.Start()
	go pool.Close()
	collectResults(pool)
}

// TestPoolDefaults tests option defaults and clamping.
func TestPoolDefaults(t *testing.T) {
	pool := NewPoolWithOptions(noopProcessFunc())
	if got := pool.NumWorkers(); got != 1 {
		t.Errorf("default workers = %d; want 1", got)
	}

	pool = NewPoolWithOptions(noopProcessFunc(), WithWorkers(8), WithBufferSize(64))
	if got := pool.NumWorkers(); got != 8 {
		t.Errorf("workers = %d; want 8", got)
	}

	pool = NewPool(0, 0, noopProcessFunc())
	if got := pool.NumWorkers(); got != 1 {
		t.Errorf("clamped workers = %d; want 1", got)
	}
}
