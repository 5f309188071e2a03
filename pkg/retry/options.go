package retry

import (
	"time"

	"github.com/jzx17/gobackoff/pkg/types"
)

// config collects the orchestration settings shared by both retry modes
type config struct {
	budget   budget
	jitter   Jitter
	handlers handlerSet
	clock    types.Clock
	name     string
	args     []any
}

// Option configures a retry wrapper at construction time. Wrappers are
// immutable once built; options have no effect on invocations already
// in flight.
type Option func(*config)

// newConfig applies opts over the defaults and validates the result
func newConfig(opts []Option) (config, error) {
	cfg := config{
		jitter: FullJitter,
		name:   "operation",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.budget.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// WithMaxTries bounds the number of attempts per invocation. Zero means
// unbounded.
func WithMaxTries(n int) Option {
	return func(c *config) {
		c.budget.maxTries = n
	}
}

// WithMaxTime bounds the wall-clock time spent on one invocation,
// measured from its first attempt. Zero means unbounded.
func WithMaxTime(d time.Duration) Option {
	return func(c *config) {
		c.budget.maxTime = d
	}
}

// WithJitter sets the jitter strategy applied to every base wait.
// Default is FullJitter.
func WithJitter(j Jitter) Option {
	return func(c *config) {
		c.jitter = j
	}
}

// WithClock sets the clock for time operations. When unset, the clock
// is resolved from the invocation context, falling back to real time.
func WithClock(clock types.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithName sets the invocation name reported to handlers
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithArgs attaches argument values reported to handlers
func WithArgs(args ...any) Option {
	return func(c *config) {
		c.args = args
	}
}

// OnSuccessHandler registers handlers dispatched when an invocation
// ends with a satisfying outcome. Repeated options append; handlers run
// in registration order.
func OnSuccessHandler(handlers ...Handler) Option {
	return func(c *config) {
		c.handlers.success = append(c.handlers.success, handlers...)
	}
}

// OnBackoffHandler registers handlers dispatched before each sleep
// between attempts.
func OnBackoffHandler(handlers ...Handler) Option {
	return func(c *config) {
		c.handlers.backoff = append(c.handlers.backoff, handlers...)
	}
}

// OnGiveUpHandler registers handlers dispatched when the budget is
// exhausted while the outcome still calls for a retry.
func OnGiveUpHandler(handlers ...Handler) Option {
	return func(c *config) {
		c.handlers.giveup = append(c.handlers.giveup, handlers...)
	}
}
