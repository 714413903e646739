package guard

import (
	"cmp"

	"github.com/shopspring/decimal"
)

// Number is the set of built-in numeric representations accepted by the
// sign rules.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Comparer is implemented by types that order themselves, such as
// decimal.Decimal and time.Time.
type Comparer[T any] interface {
	Compare(T) int
}

// zeroOf maps a representation to its additive identity.
// Types outside the mapping fall back to their default value.
func zeroOf[T any]() T {
	var zero T
	var v any
	switch any(zero).(type) {
	case int:
		v = int(0)
	case int8:
		v = int8(0)
	case int16:
		v = int16(0)
	case int32:
		v = int32(0)
	case int64:
		v = int64(0)
	case uint:
		v = uint(0)
	case uint8:
		v = uint8(0)
	case uint16:
		v = uint16(0)
	case uint32:
		v = uint32(0)
	case uint64:
		v = uint64(0)
	case uintptr:
		v = uintptr(0)
	case float32:
		v = float32(0)
	case float64:
		v = float64(0)
	case decimal.Decimal:
		v = decimal.Zero
	default:
		return zero
	}
	return v.(T)
}

func compareMethod[T Comparer[T]](a, b T) int {
	return a.Compare(b)
}

func sign[T any](rule, field string, value T, compare func(a, b T) int, reject func(int) bool, def string, opts []Option) (T, error) {
	if reject(compare(value, zeroOf[T]())) {
		var zero T
		return zero, rangeError(rule, field, value, def, opts)
	}
	return value, nil
}

func isNegative(c int) bool       { return c < 0 }
func isZero(c int) bool           { return c == 0 }
func isNegativeOrZero(c int) bool { return c <= 0 }
func isPositive(c int) bool       { return c > 0 }

const (
	msgNegative       = "value cannot be negative"
	msgZero           = "value cannot be zero"
	msgNegativeOrZero = "value must be positive (greater than zero)"
	msgPositive       = "value cannot be positive"
)

// Negative fails when value < 0.
func Negative[T Number](field string, value T, opts ...Option) (T, error) {
	return sign("negative", field, value, cmp.Compare[T], isNegative, msgNegative, opts)
}

// Zero fails when value == 0.
func Zero[T Number](field string, value T, opts ...Option) (T, error) {
	return sign("zero", field, value, cmp.Compare[T], isZero, msgZero, opts)
}

// NegativeOrZero fails when value <= 0.
func NegativeOrZero[T Number](field string, value T, opts ...Option) (T, error) {
	return sign("negative_or_zero", field, value, cmp.Compare[T], isNegativeOrZero, msgNegativeOrZero, opts)
}

// Positive fails when value > 0. It guards against positive values; use
// NegativeOrZero to require them.
func Positive[T Number](field string, value T, opts ...Option) (T, error) {
	return sign("positive", field, value, cmp.Compare[T], isPositive, msgPositive, opts)
}

func NegativeCmp[T Comparer[T]](field string, value T, opts ...Option) (T, error) {
	return sign("negative", field, value, compareMethod[T], isNegative, msgNegative, opts)
}

func ZeroCmp[T Comparer[T]](field string, value T, opts ...Option) (T, error) {
	return sign("zero", field, value, compareMethod[T], isZero, msgZero, opts)
}

func NegativeOrZeroCmp[T Comparer[T]](field string, value T, opts ...Option) (T, error) {
	return sign("negative_or_zero", field, value, compareMethod[T], isNegativeOrZero, msgNegativeOrZero, opts)
}

func PositiveCmp[T Comparer[T]](field string, value T, opts ...Option) (T, error) {
	return sign("positive", field, value, compareMethod[T], isPositive, msgPositive, opts)
}
