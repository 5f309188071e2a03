// Package retry provides the retry loop implementation
package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/jzx17/gobackoff/pkg/types"
)

// Operation is the callable being wrapped: it either returns a result
// or fails.
type Operation[T any] func(ctx context.Context) (T, error)

// orchestrator drives the retry loop for one wrapped operation
type orchestrator[T any] struct {
	wait        WaitFunc
	cfg         config
	retryable   Classifier   // error mode; nil in predicate mode
	shouldRetry func(T) bool // predicate mode; nil in error mode
}

// OnError builds a wrapper that retries an operation while the error it
// returns matches retryable. A nil retryable matches every error.
// Errors the classifier rejects are unrecoverable and propagate
// immediately, without retries or events. On give-up the last observed
// error is returned verbatim.
//
// The returned wrapper is an ordinary function transformer, so layers
// with different classifiers and budgets compose by nesting.
func OnError[T any](wait WaitFunc, retryable Classifier, opts ...Option) (func(Operation[T]) Operation[T], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if wait == nil {
		return nil, fmt.Errorf("retry: wait function must not be nil")
	}
	if retryable == nil {
		retryable = AnyError
	}

	o := &orchestrator[T]{wait: wait, cfg: cfg, retryable: retryable}
	return o.wrap, nil
}

// OnPredicate builds a wrapper that retries an operation while
// shouldRetry is true of the value it returns. A nil shouldRetry
// retries zero and empty results. Errors are not caught in this mode:
// any error from the operation propagates immediately, without retries
// or events. On give-up the last unsatisfying value is returned.
func OnPredicate[T any](wait WaitFunc, shouldRetry func(T) bool, opts ...Option) (func(Operation[T]) Operation[T], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if wait == nil {
		return nil, fmt.Errorf("retry: wait function must not be nil")
	}
	if shouldRetry == nil {
		shouldRetry = zeroOrEmpty[T]
	}

	o := &orchestrator[T]{wait: wait, cfg: cfg, shouldRetry: shouldRetry}
	return o.wrap, nil
}

func (o *orchestrator[T]) wrap(op Operation[T]) Operation[T] {
	return func(ctx context.Context) (T, error) {
		return o.run(ctx, op)
	}
}

// run executes one outer invocation. Every invocation owns its own
// tries counter, start time and generator, so concurrent invocations
// of the same wrapper never interact.
func (o *orchestrator[T]) run(ctx context.Context, op Operation[T]) (T, error) {
	clock := o.cfg.clock
	if clock == nil {
		clock = types.ClockFromContext(ctx)
	}

	inv := Invocation{Name: o.cfg.name, Args: o.cfg.args}
	gen := o.wait()
	start := clock.Now()

	for tries := 1; ; tries++ {
		val, err := op(ctx)

		again := false
		ev := Event{Invocation: inv, Tries: tries}
		if o.retryable != nil {
			if err != nil && !o.retryable(err) {
				// Unrecoverable: bypass the state machine entirely.
				return val, err
			}
			again = err != nil
			ev.Err = err
		} else {
			if err != nil {
				// Errors are not caught in predicate mode.
				return val, err
			}
			again = o.shouldRetry(val)
			ev.Value = val
		}

		if !again {
			ev.Kind = EventSuccess
			ev.Value = val
			fire(o.cfg.handlers.success, ev)
			return val, nil
		}

		if o.cfg.budget.exhausted(tries, clock.Since(start)) {
			ev.Kind = EventGiveUp
			fire(o.cfg.handlers.giveup, ev)
			// The last outcome is reproduced verbatim, never a
			// synthetic error.
			return val, err
		}

		ev.Kind = EventBackoff
		ev.Wait = o.cfg.jitter(gen.Next())
		fire(o.cfg.handlers.backoff, ev)

		if serr := sleep(ctx, clock, ev.Wait); serr != nil {
			var zero T
			return zero, serr
		}
	}
}

// sleep blocks for d on the given clock, honoring context cancellation
func sleep(ctx context.Context, clock types.Clock, d time.Duration) error {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}

	timer := clock.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C():
		return nil
	}
}
