// Package testutils provides test helpers for exercising retry loops
package testutils

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// FailNTimes returns an operation that fails with err for the first n
// calls and then returns result, plus a counter of calls made.
func FailNTimes[T any](n int, err error, result T) (func(context.Context) (T, error), *atomic.Int32) {
	var calls atomic.Int32
	op := func(ctx context.Context) (T, error) {
		var zero T
		if calls.Add(1) <= int32(n) {
			return zero, err
		}
		return result, nil
	}
	return op, &calls
}

// ReturnSequence returns an operation that yields the given values in
// order, repeating the last one forever, plus a counter of calls made.
func ReturnSequence[T any](values ...T) (func(context.Context) (T, error), *atomic.Int32) {
	var calls atomic.Int32
	op := func(ctx context.Context) (T, error) {
		i := int(calls.Add(1)) - 1
		if i >= len(values) {
			i = len(values) - 1
		}
		return values[i], nil
	}
	return op, &calls
}

// RecordingLogger captures formatted log lines for assertions
type RecordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *RecordingLogger) logf(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+": "+fmt.Sprintf(format, args...))
}

func (l *RecordingLogger) Debugf(format string, args ...interface{}) {
	l.logf("DEBUG", format, args...)
}

func (l *RecordingLogger) Infof(format string, args ...interface{}) {
	l.logf("INFO", format, args...)
}

func (l *RecordingLogger) Warnf(format string, args ...interface{}) {
	l.logf("WARN", format, args...)
}

func (l *RecordingLogger) Errorf(format string, args ...interface{}) {
	l.logf("ERROR", format, args...)
}

// Lines returns a copy of the captured log lines
func (l *RecordingLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
