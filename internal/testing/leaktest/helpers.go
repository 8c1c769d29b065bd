// Package leaktest checks that concurrent code stops the goroutines it starts.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleWait   = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond
	// DefaultDeadline bounds how long Check waits for goroutines to exit
	DefaultDeadline = time.Second
	stackBufBytes   = 1 << 16
)

// GoroutineChecker compares the goroutine count before and after a test body
type GoroutineChecker struct {
	before   int
	deadline time.Duration
	t        testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	time.Sleep(settleWait)

	return &GoroutineChecker{
		before:   runtime.NumGoroutine(),
		deadline: DefaultDeadline,
		t:        t,
	}
}

// WithDeadline changes how long Check waits
func (g *GoroutineChecker) WithDeadline(d time.Duration) *GoroutineChecker {
	g.deadline = d
	return g
}

// Check waits for the goroutine count to come back within tolerance of the
// starting count and fails the test, with a stack dump, if it never does
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	stop := time.Now().Add(g.deadline)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(stop) {
		time.Sleep(pollInterval)
		runtime.GC()
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		buf := make([]byte, stackBufBytes)
		n := runtime.Stack(buf, true)
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d\n%s",
			g.before, after, leaked, tolerance, buf[:n])
	}
}

// VerifyNone runs Check(tolerance) when the test finishes
func VerifyNone(t testing.TB, tolerance int) {
	t.Helper()
	g := NewGoroutineChecker(t)
	t.Cleanup(func() { g.Check(tolerance) })
}
