package guard

import (
	"errors"
	"strings"
)

// Errors is a set of guard failures reported together.
type Errors []*Error

func (es Errors) Error() string {
	if len(es) == 0 {
		return "guard failed"
	}
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, e.Error())
	}
	return "guard failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (es Errors) Unwrap() []error {
	out := make([]error, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

func (es Errors) Has(param string) bool {
	for _, e := range es {
		if e.Param == param {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for param.
func (es Errors) Get(param string) []string {
	var messages []string
	for _, e := range es {
		if e.Param == param {
			messages = append(messages, e.Message)
		}
	}
	return messages
}

// Params returns the distinct parameter names in order of first failure.
func (es Errors) Params() []string {
	var params []string
	seen := make(map[string]bool)
	for _, e := range es {
		if !seen[e.Param] {
			params = append(params, e.Param)
			seen[e.Param] = true
		}
	}
	return params
}

// Collect gathers the non-nil results of several rules.
// It returns nil when every error is nil and Errors when all failures are
// guard failures. Any other error is joined with the collected failures.
func Collect(errs ...error) error {
	var (
		collected Errors
		other     []error
	)
	for _, err := range errs {
		if err == nil {
			continue
		}
		var many Errors
		if errors.As(err, &many) {
			collected = append(collected, many...)
			continue
		}
		if gerr, ok := As(err); ok {
			collected = append(collected, gerr)
			continue
		}
		other = append(other, err)
	}

	if len(other) > 0 {
		if len(collected) > 0 {
			other = append(other, collected)
		}
		return errors.Join(other...)
	}
	if len(collected) == 0 {
		return nil
	}
	return collected
}

// Extract returns the guard failures carried by err, or nil.
func Extract(err error) Errors {
	if err == nil {
		return nil
	}
	var many Errors
	if errors.As(err, &many) {
		return many
	}
	if gerr, ok := As(err); ok {
		return Errors{gerr}
	}
	return nil
}

// Err drops the validated value so rule calls can be passed to Collect:
//
//	err := guard.Collect(
//		guard.Err(guard.NullOrWhiteSpace("name", name)),
//		guard.Err(guard.OutOfRange("age", age, 18, 120)),
//	)
func Err[T any](_ T, err error) error {
	return err
}

// Must returns value or panics with err. It is meant for start-up wiring
// where an invalid argument is a programming error.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}
