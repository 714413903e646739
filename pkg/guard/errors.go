package guard

import (
	"errors"
	"fmt"
)

// Kind classifies a guard failure.
type Kind uint8

const (
	// KindArgument marks a structurally invalid argument: wrong format,
	// unknown enum member, empty collection, failed condition.
	KindArgument Kind = iota + 1
	// KindNull marks an absent argument where a value was required.
	KindNull
	// KindRange marks a numeric or length value outside an allowed interval.
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindNull:
		return "null"
	case KindRange:
		return "range"
	default:
		return "unknown"
	}
}

// Sentinel errors matched by errors.Is against any *Error.
// ErrArgument matches every kind: null and range failures are argument failures too.
var (
	ErrArgument = errors.New("invalid argument")
	ErrNull     = errors.New("argument cannot be null")
	ErrRange    = errors.New("argument out of range")
)

// DefaultParam is used when a rule is called with an empty parameter name.
const DefaultParam = "value"

// Error describes a single guard failure.
type Error struct {
	Kind    Kind
	Param   string
	Message string
	// Rule is a stable identifier of the failed rule, e.g. "out_of_range".
	Rule string
	// Value is the offending value. Range errors always carry it.
	Value any
	// Err is the underlying cause, if any (e.g. a pattern compile error).
	Err error
}

func (e *Error) Error() string {
	if e.Kind == KindRange {
		return fmt.Sprintf("%s: %s (actual value: %v)", e.Param, e.Message, e.Value)
	}
	return e.Param + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether the error belongs to the kind represented by target.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrArgument:
		return true
	case ErrNull:
		return e.Kind == KindNull
	case ErrRange:
		return e.Kind == KindRange
	}
	return false
}

// As extracts the first *Error from err's chain.
func As(err error) (*Error, bool) {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr, true
	}
	return nil, false
}

func IsNull(err error) bool {
	return err != nil && errors.Is(err, ErrNull)
}

func IsRange(err error) bool {
	return err != nil && errors.Is(err, ErrRange)
}

// IsArgument reports whether err is any guard failure.
func IsArgument(err error) bool {
	return err != nil && errors.Is(err, ErrArgument)
}

func newError(kind Kind, rule, field string, value any, def string, opts []Option) *Error {
	o := resolve(opts)
	return &Error{
		Kind:    kind,
		Param:   paramName(field),
		Message: o.messageOr(def),
		Rule:    rule,
		Value:   value,
	}
}

func nullError(rule, field string, opts []Option) *Error {
	return newError(KindNull, rule, field, nil, "value cannot be null", opts)
}

func argumentError(rule, field string, value any, def string, opts []Option) *Error {
	return newError(KindArgument, rule, field, value, def, opts)
}

func rangeError(rule, field string, value any, def string, opts []Option) *Error {
	return newError(KindRange, rule, field, value, def, opts)
}

func paramName(field string) string {
	if field == "" {
		return DefaultParam
	}
	return field
}
