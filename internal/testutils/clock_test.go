package testutils

import (
	"context"
	"testing"
	"time"
)

func TestClockWrapper_TimerFiresOnAdvance(t *testing.T) {
	mock := NewMockClock(t)
	clock := NewClockWrapper(mock)

	start := clock.Now()
	timer := clock.NewTimer(5 * time.Second)

	select {
	case <-timer.C():
		t.Fatal("timer fired before the clock advanced")
	default:
	}

	mock.Advance(5 * time.Second).MustWait(context.Background())

	select {
	case <-timer.C():
	default:
		t.Fatal("timer did not fire after advancing the clock")
	}

	if got := clock.Since(start); got != 5*time.Second {
		t.Errorf("Since(start) = %v, want 5s", got)
	}
}

func TestClockWrapper_StopPreventsFiring(t *testing.T) {
	mock := NewMockClock(t)
	clock := NewClockWrapper(mock)

	timer := clock.NewTimer(time.Second)
	if !timer.Stop() {
		t.Fatal("Stop() = false, want true for a pending timer")
	}

	mock.Advance(2 * time.Second)

	select {
	case <-timer.C():
		t.Fatal("stopped timer still fired")
	default:
	}
}
