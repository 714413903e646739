package guard

import (
	"cmp"
	"fmt"
)

func outOfRange[T any](field string, value, min, max T, compare func(a, b T) int, opts []Option) (T, error) {
	if compare(value, min) < 0 || compare(value, max) > 0 {
		var zero T
		return zero, rangeError("out_of_range", field, value,
			fmt.Sprintf("value must be between %v and %v", min, max), opts)
	}
	return value, nil
}

func bound[T any](rule, field string, value, limit T, compare func(a, b T) int, reject func(int) bool, format string, opts []Option) (T, error) {
	if reject(compare(value, limit)) {
		var zero T
		return zero, rangeError(rule, field, value, fmt.Sprintf(format, limit), opts)
	}
	return value, nil
}

func isGreaterOrEqual(c int) bool { return c >= 0 }

// OutOfRange fails when value is outside [min, max]. Both bounds are inclusive.
func OutOfRange[T cmp.Ordered](field string, value, min, max T, opts ...Option) (T, error) {
	return outOfRange(field, value, min, max, cmp.Compare[T], opts)
}

// GreaterThan fails when value > maximum.
func GreaterThan[T cmp.Ordered](field string, value, maximum T, opts ...Option) (T, error) {
	return bound("greater_than", field, value, maximum, cmp.Compare[T], isPositive, "value must not be greater than %v", opts)
}

// GreaterThanOrEqualTo fails when value >= maximum.
func GreaterThanOrEqualTo[T cmp.Ordered](field string, value, maximum T, opts ...Option) (T, error) {
	return bound("greater_than_or_equal_to", field, value, maximum, cmp.Compare[T], isGreaterOrEqual, "value must be less than %v", opts)
}

// LessThan fails when value < minimum.
func LessThan[T cmp.Ordered](field string, value, minimum T, opts ...Option) (T, error) {
	return bound("less_than", field, value, minimum, cmp.Compare[T], isNegative, "value must not be less than %v", opts)
}

// LessThanOrEqualTo fails when value <= minimum.
func LessThanOrEqualTo[T cmp.Ordered](field string, value, minimum T, opts ...Option) (T, error) {
	return bound("less_than_or_equal_to", field, value, minimum, cmp.Compare[T], isNegativeOrZero, "value must be greater than %v", opts)
}

// Comparer variants, for decimal.Decimal, time.Time and similar types.

func OutOfRangeCmp[T Comparer[T]](field string, value, min, max T, opts ...Option) (T, error) {
	return outOfRange(field, value, min, max, compareMethod[T], opts)
}

func GreaterThanCmp[T Comparer[T]](field string, value, maximum T, opts ...Option) (T, error) {
	return bound("greater_than", field, value, maximum, compareMethod[T], isPositive, "value must not be greater than %v", opts)
}

func GreaterThanOrEqualToCmp[T Comparer[T]](field string, value, maximum T, opts ...Option) (T, error) {
	return bound("greater_than_or_equal_to", field, value, maximum, compareMethod[T], isGreaterOrEqual, "value must be less than %v", opts)
}

func LessThanCmp[T Comparer[T]](field string, value, minimum T, opts ...Option) (T, error) {
	return bound("less_than", field, value, minimum, compareMethod[T], isNegative, "value must not be less than %v", opts)
}

func LessThanOrEqualToCmp[T Comparer[T]](field string, value, minimum T, opts ...Option) (T, error) {
	return bound("less_than_or_equal_to", field, value, minimum, compareMethod[T], isNegativeOrZero, "value must be greater than %v", opts)
}
