package testing

import (
	"testing"

	"github.com/Brannonj96/RandomizeProjectMembers/types"
)

// NewTestLogger creates a logger that routes allocator output through the
// test's own log, so placement and rebalance traces show up interleaved with
// test output (and only on failure or -v, as usual).
//
// Typical use:
//
//	a, err := assign.NewAllocator(&cfg, src,
//	    assign.WithLogger(assigntest.NewTestLogger(t)))
//
// Fatal fails the test immediately.
func NewTestLogger(tb testing.TB) types.Logger {
	return &testLogger{tb: tb}
}

type testLogger struct {
	tb testing.TB
}

var _ types.Logger = (*testLogger)(nil)

func (l *testLogger) Debug(msg string, keysAndValues ...any) {
	l.tb.Logf("DEBUG: %s %v", msg, keysAndValues)
}

func (l *testLogger) Info(msg string, keysAndValues ...any) {
	l.tb.Logf("INFO: %s %v", msg, keysAndValues)
}

func (l *testLogger) Warn(msg string, keysAndValues ...any) {
	l.tb.Logf("WARN: %s %v", msg, keysAndValues)
}

func (l *testLogger) Error(msg string, keysAndValues ...any) {
	l.tb.Logf("ERROR: %s %v", msg, keysAndValues)
}

func (l *testLogger) Fatal(msg string, keysAndValues ...any) {
	l.tb.Fatalf("FATAL: %s %v", msg, keysAndValues)
}
