package retry

import "reflect"

// Classifier reports whether an error should trigger another attempt.
// Errors it rejects are unrecoverable: they propagate to the caller
// immediately, without entering the retry loop.
type Classifier func(error) bool

// AnyError is a classifier matching every error.
func AnyError(error) bool {
	return true
}

// zeroOrEmpty is the default predicate for result-based retrying: keep
// retrying while the result is the zero value of its type or an empty
// container. Booleans retry on false, numbers on zero, strings, slices,
// maps and channels on zero length, pointers and interfaces on nil.
func zeroOrEmpty[T any](v T) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		// nil interface value
		return true
	}

	switch rv.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
		return rv.Len() == 0
	default:
		return rv.IsZero()
	}
}
