// Package retry provides wait-time generator implementations
package retry

import (
	"fmt"
	"math"
	"time"
)

// Generator produces an infinite sequence of base wait durations.
// Implementations never terminate on their own; the retry loop simply
// stops pulling values when it is done.
type Generator interface {
	// Next returns the next base wait duration
	Next() time.Duration
}

// WaitFunc creates a fresh Generator for one invocation. The retry loop
// calls it once per outer invocation, so progression state never leaks
// from one invocation into the next.
type WaitFunc func() Generator

// constantGen yields the same interval forever
type constantGen struct {
	interval time.Duration
}

func (g *constantGen) Next() time.Duration {
	return g.interval
}

// Constant returns a wait function that yields interval on every pull.
func Constant(interval time.Duration) WaitFunc {
	return func() Generator {
		return &constantGen{interval: interval}
	}
}

// expoGen yields factor * base^0, factor * base^1, factor * base^2, ...
type expoGen struct {
	base   float64
	factor time.Duration
	max    time.Duration
	n      int
}

func (g *expoGen) Next() time.Duration {
	v := float64(g.factor) * math.Pow(g.base, float64(g.n))

	d := time.Duration(math.MaxInt64)
	if v < float64(math.MaxInt64) {
		d = time.Duration(v)
	}

	// Once the true sequence reaches the cap, keep yielding the cap
	// without advancing the exponent.
	if g.max > 0 && d >= g.max {
		return g.max
	}

	g.n++
	return d
}

// Expo returns a wait function for exponential growth: factor * base^n
// with base 2 and factor 1s unless configured otherwise. A configured
// cap clamps every value to min(value, cap); the sequence keeps
// producing capped values rather than stopping.
func Expo(opts ...WaitOption) (WaitFunc, error) {
	cfg := expoConfig{base: 2, factor: time.Second}
	for _, opt := range opts {
		opt.applyToExpo(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return func() Generator {
		return &expoGen{base: cfg.base, factor: cfg.factor, max: cfg.max}
	}, nil
}

// fiboGen yields factor * fib(n) for fib = 1, 1, 2, 3, 5, 8, ...
type fiboGen struct {
	factor time.Duration
	max    time.Duration
	a, b   int64
}

func (g *fiboGen) Next() time.Duration {
	d := time.Duration(g.a) * g.factor

	if g.max > 0 && d >= g.max {
		return g.max
	}

	next := g.a + g.b
	if next < g.b {
		// overflow; hold at the last representable value
		next = math.MaxInt64
	}
	g.a, g.b = g.b, next
	return d
}

// Fibo returns a wait function following the Fibonacci sequence scaled
// by factor (default 1s). Cap clamping behaves exactly as for Expo.
func Fibo(opts ...WaitOption) (WaitFunc, error) {
	cfg := fiboConfig{factor: time.Second}
	for _, opt := range opts {
		opt.applyToFibo(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return func() Generator {
		return &fiboGen{factor: cfg.factor, max: cfg.max, a: 1, b: 1}
	}, nil
}

type expoConfig struct {
	base   float64
	factor time.Duration
	max    time.Duration
	maxSet bool
}

func (c *expoConfig) validate() error {
	if c.base <= 0 {
		return fmt.Errorf("retry: base must be positive, got %v", c.base)
	}
	if c.factor <= 0 {
		return fmt.Errorf("retry: factor must be positive, got %v", c.factor)
	}
	return validateMaxWait(c.max, c.maxSet)
}

type fiboConfig struct {
	factor time.Duration
	max    time.Duration
	maxSet bool
}

func (c *fiboConfig) validate() error {
	if c.factor <= 0 {
		return fmt.Errorf("retry: factor must be positive, got %v", c.factor)
	}
	return validateMaxWait(c.max, c.maxSet)
}

// A zero or negative cap would make every wait zero or negative, so it
// is rejected up front rather than at pull time.
func validateMaxWait(max time.Duration, set bool) error {
	if set && max <= 0 {
		return fmt.Errorf("retry: max wait must be positive, got %v", max)
	}
	return nil
}

// WaitOption configures generator construction. Options that are not
// meaningful for a given generator are ignored.
type WaitOption interface {
	applyToExpo(*expoConfig)
	applyToFibo(*fiboConfig)
}

type waitOption struct {
	base   *float64
	factor *time.Duration
	max    *time.Duration
}

func (o *waitOption) applyToExpo(c *expoConfig) {
	if o.base != nil {
		c.base = *o.base
	}
	if o.factor != nil {
		c.factor = *o.factor
	}
	if o.max != nil {
		c.max = *o.max
		c.maxSet = true
	}
}

func (o *waitOption) applyToFibo(c *fiboConfig) {
	if o.factor != nil {
		c.factor = *o.factor
	}
	if o.max != nil {
		c.max = *o.max
		c.maxSet = true
	}
}

// WithBase sets the exponentiation base (exponential generator only)
func WithBase(base float64) WaitOption {
	return &waitOption{base: &base}
}

// WithFactor sets the duration each sequence value is scaled by
func WithFactor(factor time.Duration) WaitOption {
	return &waitOption{factor: &factor}
}

// WithMaxWait caps every yielded value at max
func WithMaxWait(max time.Duration) WaitOption {
	return &waitOption{max: &max}
}
