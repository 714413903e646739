package guard

import (
	"fmt"
	"slices"
)

// Enum is implemented by enum-like types that can list their declared
// members. Members must not depend on the receiver's value.
//
//	type Status int
//
//	const (
//		Active Status = iota + 1
//		Suspended
//	)
//
//	func (Status) Members() []Status { return []Status{Active, Suspended} }
type Enum[E comparable] interface {
	comparable
	Members() []E
}

// NotInEnum fails when value is not one of its type's declared members.
func NotInEnum[E Enum[E]](field string, value E, opts ...Option) (E, error) {
	if slices.Contains(value.Members(), value) {
		return value, nil
	}
	var zero E
	return zero, argumentError("not_in_enum", field, value,
		fmt.Sprintf("value %v is not defined in enum %s", value, typeName[E]()), opts)
}
