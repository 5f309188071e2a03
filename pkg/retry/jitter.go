// Package retry provides jitter strategies for wait durations
package retry

import (
	"math/rand"
	"time"
)

// Jitter transforms a base wait duration into the final sleep duration.
// Strategies must never return a negative duration.
type Jitter func(time.Duration) time.Duration

// FullJitter draws uniformly from [0, d]. A non-positive d yields 0.
func FullJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(d) + 1))
}

// NoJitter returns d unchanged; a negative d is treated as zero.
func NoJitter(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

// EqualJitter keeps half the base duration and draws the rest uniformly:
// d/2 + random(0, d/2).
func EqualJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(rand.Int63n(int64(half)+1))
}
