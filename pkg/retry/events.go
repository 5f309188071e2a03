// Package retry provides the event notification contract
package retry

import "time"

// EventKind identifies the hook point an event was dispatched from
type EventKind int

const (
	// EventSuccess fires once when an invocation ends with a
	// satisfying outcome
	EventSuccess EventKind = iota
	// EventBackoff fires before each sleep between attempts
	EventBackoff
	// EventGiveUp fires once when the budget is exhausted while the
	// outcome still calls for a retry
	EventGiveUp
)

func (k EventKind) String() string {
	switch k {
	case EventSuccess:
		return "success"
	case EventBackoff:
		return "backoff"
	case EventGiveUp:
		return "giveup"
	default:
		return "unknown"
	}
}

// Invocation identifies one outer call to a wrapped operation. It is
// captured once per call and passed to handlers for reporting only;
// the engine never reads it back.
type Invocation struct {
	// Name identifies the wrapped operation
	Name string
	// Args are optional argument values attached for reporting
	Args []any
}

// Event carries the details handlers receive at each hook point. The
// last error or result rides on the event record, so handlers for
// backoff and give-up see the failure that triggered them.
type Event struct {
	// Kind is the hook point this event was dispatched from
	Kind EventKind
	// Invocation identifies the wrapped call
	Invocation Invocation
	// Tries is the number of attempts made so far, starting at 1
	Tries int
	// Wait is the computed sleep before the next attempt; set on
	// backoff events only
	Wait time.Duration
	// Err is the last error when retrying on errors
	Err error
	// Value is the last result when retrying on a predicate
	Value any
}

// Handler observes retry lifecycle events. Handlers run synchronously
// in registration order; a panicking handler is not recovered and
// aborts both the remaining dispatch and the retry loop.
type Handler func(Event)

// handlerSet holds the registered handlers per hook point
type handlerSet struct {
	success []Handler
	backoff []Handler
	giveup  []Handler
}

func fire(handlers []Handler, ev Event) {
	for _, h := range handlers {
		h(ev)
	}
}

// Logger is the minimal logging surface consumed by LogEvents
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// LogEvents builds a handler that logs events through logger. The
// engine installs no logging on its own; register the handler on
// whichever hooks should be visible.
func LogEvents(logger Logger) Handler {
	return func(ev Event) {
		switch ev.Kind {
		case EventBackoff:
			if ev.Err != nil {
				logger.Infof("backing off %s for %v after %d tries: %v", ev.Invocation.Name, ev.Wait, ev.Tries, ev.Err)
			} else {
				logger.Infof("backing off %s for %v after %d tries", ev.Invocation.Name, ev.Wait, ev.Tries)
			}
		case EventGiveUp:
			if ev.Err != nil {
				logger.Errorf("giving up %s after %d tries: %v", ev.Invocation.Name, ev.Tries, ev.Err)
			} else {
				logger.Errorf("giving up %s after %d tries", ev.Invocation.Name, ev.Tries)
			}
		case EventSuccess:
			logger.Debugf("%s succeeded after %d tries", ev.Invocation.Name, ev.Tries)
		}
	}
}
