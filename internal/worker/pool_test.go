package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chessctrl-go/internal/chess"
	"github.com/lgbarn/chessctrl-go/internal/search"
)

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(_ context.Context, item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, Label: item.Label}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(_ context.Context, item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index, Found: true}
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

func initialItem(i int) WorkItem {
	return WorkItem{Index: i, Board: chess.NewInitialBoard(), Side: chess.White}
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPoolWithOptions(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(initialItem(i))
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

// TestPoolSearchFunc runs real searches through the pool.
func TestPoolSearchFunc(t *testing.T) {
	pool := NewPoolWithOptions(SearchFunc(search.New(search.Options{Depth: 1})), WithWorkers(2))
	pool.Start()

	hanging := chess.NewBoard()
	hanging.Set(chess.Sq('E', '1'), chess.W(chess.King))
	hanging.Set(chess.Sq('E', '8'), chess.B(chess.King))
	hanging.Set(chess.Sq('D', '1'), chess.W(chess.Rook))
	hanging.Set(chess.Sq('D', '7'), chess.B(chess.Queen))

	go func() {
		pool.Submit(WorkItem{Index: 0, Label: "hanging", Board: hanging, Side: chess.White})
		pool.Submit(WorkItem{Index: 1, Label: "empty", Board: chess.NewBoard(), Side: chess.Black})
		pool.Close()
	}()

	results := make(map[int]ProcessResult)
	for r := range pool.Results() {
		results[r.Index] = r
	}

	got := results[0]
	if !got.Found || got.Move.To != chess.Sq('D', '7') || got.Move.Score != 100 {
		t.Errorf("hanging: got %+v; want D1-D7 scoring 100", got)
	}
	if got.Label != "hanging" || got.Side != chess.White || got.Error != nil {
		t.Errorf("hanging: metadata = %+v", got)
	}
	if results[1].Found {
		t.Errorf("empty board: Found = true; want false")
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(_ context.Context, item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPoolWithOptions(slowProcessFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(initialItem(i))
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	// Should have processed fewer than total due to early stop
	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolStopCancelsContext checks that running work sees cancellation.
func TestPoolStopCancelsContext(t *testing.T) {
	started := make(chan struct{})
	waitFunc := func(ctx context.Context, item WorkItem) ProcessResult {
		close(started)
		<-ctx.Done()
		return ProcessResult{Index: item.Index, Error: ctx.Err()}
	}

	pool := NewPoolWithOptions(waitFunc, WithWorkers(1), WithBufferSize(1))
	pool.Start()
	pool.Submit(initialItem(0))

	<-started
	pool.Stop()
	go pool.Close()

	for r := range pool.Results() {
		if !errors.Is(r.Error, context.Canceled) {
			t.Errorf("Error = %v; want context.Canceled", r.Error)
		}
	}
}

// TestPoolWithContext checks that a parent context cancels the pool's work.
func TestPoolWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPoolWithOptions(SearchFunc(search.New(search.DefaultOptions())), WithContext(ctx))
	pool.Start()
	pool.Submit(initialItem(0))
	go pool.Close()

	for r := range pool.Results() {
		if r.Found {
			t.Error("Found = true after cancellation; want false")
		}
		if !errors.Is(r.Error, context.Canceled) {
			t.Errorf("Error = %v; want context.Canceled", r.Error)
		}
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(2), WithBufferSize(10))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

// TestPoolNumWorkers tests NumWorkers method.
func TestPoolNumWorkers(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"valid workers", 4, 4},
		{"minimum workers", 1, 1},
		{"zero defaults to 1", 0, 1},
		{"negative defaults to 1", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(tt.input), WithBufferSize(10))
			if got := pool.NumWorkers(); got != tt.expected {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.expected)
			}
		})
	}
}

// TestPoolResultOrder tests that all results are received regardless of order.
func TestPoolResultOrder(t *testing.T) {
	variableDelayFunc := func(_ context.Context, item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return ProcessResult{Index: item.Index}
	}

	pool := NewPoolWithOptions(variableDelayFunc, WithWorkers(4), WithBufferSize(20))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(initialItem(i))
	}

	go pool.Close()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}

	if len(seen) != numItems {
		t.Errorf("received %d results; want %d", len(seen), numItems)
	}
	for i := 0; i < numItems; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPoolWithOptions(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(initialItem(i))
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestNewPoolWithOptions tests the functional options constructor.
func TestNewPoolWithOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
		{"nil context ignored", []PoolOption{WithContext(nil)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithOptions(noopProcessFunc(), tt.opts...)
			if pool.NumWorkers() != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", pool.NumWorkers(), tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}
