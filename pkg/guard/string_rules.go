package guard

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// NullOrWhiteSpace fails when value is empty or consists only of Unicode
// white space.
func NullOrWhiteSpace(field, value string, opts ...Option) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", argumentError("null_or_whitespace", field, value, "value cannot be null or whitespace", opts)
	}
	return value, nil
}

// NullOrWhiteSpacePtr is NullOrWhiteSpace for optional strings; nil fails with KindNull.
func NullOrWhiteSpacePtr(field string, value *string, opts ...Option) (string, error) {
	if value == nil {
		return "", nullError("null_or_whitespace", field, opts)
	}
	return NullOrWhiteSpace(field, *value, opts...)
}

func NullOrEmpty(field, value string, opts ...Option) (string, error) {
	if value == "" {
		return "", argumentError("null_or_empty", field, value, "value cannot be null or empty", opts)
	}
	return value, nil
}

func NullOrEmptyPtr(field string, value *string, opts ...Option) (string, error) {
	if value == nil {
		return "", nullError("null_or_empty", field, opts)
	}
	return NullOrEmpty(field, *value, opts...)
}

// InvalidFormat fails when value does not match pattern.
// Matching is unanchored; use ^ and $ to match the whole string.
// A pattern that does not compile is reported as a KindArgument error
// wrapping the compile error.
func InvalidFormat(field, value, pattern string, opts ...Option) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		gerr := argumentError("invalid_format", field, value,
			fmt.Sprintf("invalid format pattern %q", pattern), opts)
		gerr.Err = err
		return "", gerr
	}
	return InvalidFormatRegexp(field, value, re, opts...)
}

func InvalidFormatPtr(field string, value *string, pattern string, opts ...Option) (string, error) {
	if value == nil {
		return "", nullError("invalid_format", field, opts)
	}
	return InvalidFormat(field, *value, pattern, opts...)
}

// InvalidFormatRegexp is InvalidFormat with a precompiled expression.
func InvalidFormatRegexp(field, value string, re *regexp.Regexp, opts ...Option) (string, error) {
	if re == nil || !re.MatchString(value) {
		pattern := "<nil>"
		if re != nil {
			pattern = re.String()
		}
		return "", argumentError("invalid_format", field, value,
			fmt.Sprintf("value does not match the required format: %s", pattern), opts)
	}
	return value, nil
}

// InvalidLength fails when the number of characters (runes) in value is
// outside [minLength, maxLength].
func InvalidLength(field, value string, minLength, maxLength int, opts ...Option) (string, error) {
	n := utf8.RuneCountInString(value)
	if n < minLength || n > maxLength {
		return "", rangeError("invalid_length", field, n,
			fmt.Sprintf("string length must be between %d and %d", minLength, maxLength), opts)
	}
	return value, nil
}

func InvalidLengthPtr(field string, value *string, minLength, maxLength int, opts ...Option) (string, error) {
	if value == nil {
		return "", nullError("invalid_length", field, opts)
	}
	return InvalidLength(field, *value, minLength, maxLength, opts...)
}
