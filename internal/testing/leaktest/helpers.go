// Package leaktest checks that background work started by a test is gone when the test ends.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettle is how long Check waits for goroutines to wind down
const DefaultSettle = 500 * time.Millisecond

const pollEvery = 10 * time.Millisecond

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	t        testing.TB
	baseline int
	settle   time.Duration
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, baseline: runtime.NumGoroutine(), settle: DefaultSettle}
}

// WithSettle overrides how long Check keeps polling
func (g *GoroutineChecker) WithSettle(d time.Duration) *GoroutineChecker {
	g.settle = d
	return g
}

// Check polls until at most tolerance extra goroutines remain, failing the test after the settle window
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(g.settle)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n-g.baseline <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("goroutine leak: baseline=%d now=%d extra=%d tolerance=%d",
				g.baseline, n, n-g.baseline, tolerance)
			return
		}
		time.Sleep(pollEvery)
	}
}

// AfterStop runs start, calls the stop func it returns, and checks nothing was left running
func AfterStop(t *testing.T, tolerance int, start func() (stop func())) {
	t.Helper()
	g := NewGoroutineChecker(t)
	stop := start()
	stop()
	g.Check(tolerance)
}

// HeapChecker compares live heap size against a baseline
type HeapChecker struct {
	t      testing.TB
	before uint64
}

// NewHeapChecker collects garbage and records the live heap
func NewHeapChecker(t testing.TB) *HeapChecker {
	t.Helper()
	return &HeapChecker{t: t, before: liveHeap()}
}

// Check fails the test when the live heap grew by more than maxGrowthMB
func (h *HeapChecker) Check(maxGrowthMB float64) {
	h.t.Helper()
	after := liveHeap()
	growth := (float64(after) - float64(h.before)) / (1 << 20)
	if growth > maxGrowthMB {
		h.t.Errorf("heap grew %.2fMB (max %.2fMB): before=%d after=%d bytes",
			growth, maxGrowthMB, h.before, after)
	}
}

func liveHeap() uint64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}
