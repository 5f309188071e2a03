package retry

import (
	"fmt"
	"time"
)

// budget bounds one invocation by attempt count and wall-clock time.
// The zero value places no bound at all; the decision logic is then the
// only thing that can stop the loop.
type budget struct {
	maxTries int
	maxTime  time.Duration
}

// exhausted reports whether no further attempt may be made. tries is
// the number of calls made so far; elapsed is measured from the first
// attempt and never reset.
func (b budget) exhausted(tries int, elapsed time.Duration) bool {
	if b.maxTries > 0 && tries >= b.maxTries {
		return true
	}
	if b.maxTime > 0 && elapsed >= b.maxTime {
		return true
	}
	return false
}

func (b budget) validate() error {
	if b.maxTries < 0 {
		return fmt.Errorf("retry: max tries must not be negative, got %d", b.maxTries)
	}
	if b.maxTime < 0 {
		return fmt.Errorf("retry: max time must not be negative, got %v", b.maxTime)
	}
	return nil
}
