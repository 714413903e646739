package guard

// Condition fails when condition is false. There is no value to return.
func Condition(field string, condition bool, opts ...Option) error {
	if !condition {
		return argumentError("condition", field, nil, "condition was not met", opts)
	}
	return nil
}
