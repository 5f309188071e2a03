package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/jzx17/gobackoff/pkg/types"
)

// NewMockClock creates a mock clock for testing
func NewMockClock(t testing.TB) *quartz.Mock {
	return quartz.NewMock(t)
}

// ClockWrapper adapts quartz.Mock to the types.Clock interface
type ClockWrapper struct {
	*quartz.Mock
}

// NewClockWrapper creates a new ClockWrapper
func NewClockWrapper(mock *quartz.Mock) *ClockWrapper {
	return &ClockWrapper{Mock: mock}
}

// Now returns the mock's current time
func (c *ClockWrapper) Now() time.Time {
	return c.Mock.Now()
}

// Since returns the mock time elapsed since t
func (c *ClockWrapper) Since(t time.Time) time.Duration {
	return c.Mock.Since(t)
}

// NewTimer creates a mock Timer
func (c *ClockWrapper) NewTimer(d time.Duration) types.Timer {
	return &TimerWrapper{timer: c.Mock.NewTimer(d)}
}

// TimerWrapper wraps a quartz timer
type TimerWrapper struct {
	timer *quartz.Timer
}

func (t *TimerWrapper) C() <-chan time.Time {
	return t.timer.C
}

func (t *TimerWrapper) Stop() bool {
	return t.timer.Stop()
}

// WithMockClock creates a context carrying the mock clock
func WithMockClock(ctx context.Context, mock *quartz.Mock) context.Context {
	return types.WithClock(ctx, NewClockWrapper(mock))
}
