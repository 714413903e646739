package guard

import (
	"fmt"
	"reflect"
)

// Null fails with a KindNull error when value is nil.
func Null[T any](field string, value *T, opts ...Option) (*T, error) {
	if value == nil {
		return nil, nullError("null", field, opts)
	}
	return value, nil
}

// NullValue is Null for optional values: it dereferences a non-nil pointer.
func NullValue[T any](field string, value *T, opts ...Option) (T, error) {
	if value == nil {
		var zero T
		return zero, nullError("null", field, opts)
	}
	return *value, nil
}

// Default fails when value equals the zero value of its type.
// Types exposing IsZero() bool (time.Time, decimal.Decimal) are judged by it,
// so a zero amount with a non-nil internal representation is still rejected.
func Default[T comparable](field string, value T, opts ...Option) (T, error) {
	if isDefault(value) {
		var zero T
		return zero, argumentError("default", field, value,
			fmt.Sprintf("value cannot be the default value for %s", typeName[T]()), opts)
	}
	return value, nil
}

// DefaultStruct is an alias for Default.
func DefaultStruct[T comparable](field string, value T, opts ...Option) (T, error) {
	return Default(field, value, opts...)
}

type zeroer interface {
	IsZero() bool
}

func isDefault[T comparable](value T) bool {
	var zero T
	if value == zero {
		return true
	}
	if z, ok := any(value).(zeroer); ok {
		return z.IsZero()
	}
	return false
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
