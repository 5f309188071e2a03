// Package retry wraps fallible or pollable operations so they are
// automatically retried on a configurable backoff schedule until they
// succeed, the retry budget runs out, or an unrecoverable error occurs.
//
// It is meant for callers hitting unreliable external resources, such
// as network calls or polling loops, who want declarative retry
// behavior instead of a hand-rolled loop at every call site.
//
// Key pieces:
//
// 1. Wait-time generators:
//   - Constant: the same interval on every pull
//   - Expo: exponential growth (factor * base^n)
//   - Fibo: Fibonacci growth
//
// Generators yield an infinite sequence; an optional cap clamps each
// value without stopping the sequence. A fresh generator is created for
// every outer invocation.
//
// 2. Jitter strategies:
//   - FullJitter: uniform draw from [0, d] (the default)
//   - EqualJitter: d/2 plus a uniform draw from [0, d/2]
//   - NoJitter: pass-through
//
// 3. Two retry modes:
//   - OnError: retry while the returned error matches a classifier;
//     errors the classifier rejects propagate immediately
//   - OnPredicate: retry while a predicate holds for the returned
//     value; by default zero and empty results are retried
//
// 4. Budget enforcement: WithMaxTries and WithMaxTime bound one
// invocation by attempt count and wall-clock time. On exhaustion the
// last observed error or value is handed back verbatim.
//
// 5. Event notification: handlers registered with OnSuccessHandler,
// OnBackoffHandler and OnGiveUpHandler observe the lifecycle of each
// invocation. Exactly one terminal event fires per invocation.
//
// Retrying on errors:
//
//	wait, _ := retry.Expo(retry.WithFactor(100 * time.Millisecond))
//	wrap, err := retry.OnError[*http.Response](wait,
//		func(err error) bool { return !errors.Is(err, errBadRequest) },
//		retry.WithMaxTries(8),
//	)
//	if err != nil {
//		// invalid configuration
//	}
//	getURL := wrap(func(ctx context.Context) (*http.Response, error) {
//		return fetch(ctx, url)
//	})
//	resp, err := getURL(ctx)
//
// Polling with a predicate:
//
//	wait, _ := retry.Fibo(retry.WithMaxWait(13 * time.Second))
//	wrap, _ := retry.OnPredicate[[]Message](wait, nil)
//	poll := wrap(func(ctx context.Context) ([]Message, error) {
//		return queue.Fetch(ctx)
//	})
//	msgs, err := poll(ctx)
//
// Stacking wrappers:
//
// Wrappers are plain function transformers, so different policies for
// different failure classes compose by nesting. An inner layer's
// give-up outcome is evaluated by the next outer layer exactly as a
// direct call would be:
//
//	inner, _ := retry.OnError[[]byte](wait, isTimeout, retry.WithMaxTries(8))
//	outer, _ := retry.OnError[[]byte](wait, isRequestError, retry.WithMaxTries(4))
//	op := outer(inner(fetch))
//
// Event handling:
//
//	wrap, _ := retry.OnError[string](wait, nil,
//		retry.OnBackoffHandler(func(ev retry.Event) {
//			metrics.Histogram("retry.backoff."+ev.Invocation.Name, ev.Wait)
//		}),
//		retry.OnGiveUpHandler(retry.LogEvents(logger)),
//	)
//
// Thread safety:
//
// Wrappers are immutable after construction. Each outer invocation owns
// its attempt counter, elapsed clock and generator state, so concurrent
// invocations of the same wrapped operation need no locking.
//
// Time is read through the types.Clock abstraction and can be mocked in
// tests; see internal/testutils for the quartz-backed wrapper.
package retry
