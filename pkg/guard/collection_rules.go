package guard

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

const msgEmptyCollection = "collection cannot be empty"

// NullOrEmptySlice fails with KindNull for a nil slice and KindArgument for
// an empty one.
func NullOrEmptySlice[S ~[]E, E any](field string, value S, opts ...Option) (S, error) {
	if value == nil {
		return nil, nullError("null_or_empty", field, opts)
	}
	if len(value) == 0 {
		return nil, argumentError("null_or_empty", field, value, msgEmptyCollection, opts)
	}
	return value, nil
}

func NullOrEmptyMap[M ~map[K]V, K comparable, V any](field string, value M, opts ...Option) (M, error) {
	if value == nil {
		return nil, nullError("null_or_empty", field, opts)
	}
	if len(value) == 0 {
		return nil, argumentError("null_or_empty", field, value, msgEmptyCollection, opts)
	}
	return value, nil
}

// NullOrEmptySeq drains seq and returns the collected elements, so a
// single-use sequence is consumed exactly once.
func NullOrEmptySeq[E any](field string, seq iter.Seq[E], opts ...Option) ([]E, error) {
	if seq == nil {
		return nil, nullError("null_or_empty", field, opts)
	}
	items := slices.Collect(seq)
	if len(items) == 0 {
		return nil, argumentError("null_or_empty", field, nil, msgEmptyCollection, opts)
	}
	return items, nil
}

// NotOneOf fails when value is not in allowed.
func NotOneOf[T comparable](field string, value T, allowed []T, opts ...Option) (T, error) {
	if slices.Contains(allowed, value) {
		return value, nil
	}
	parts := make([]string, len(allowed))
	for i, a := range allowed {
		parts[i] = fmt.Sprint(a)
	}
	var zero T
	return zero, argumentError("not_one_of", field, value,
		"value must be one of: "+strings.Join(parts, ", "), opts)
}
