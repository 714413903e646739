package guard

// Option customises a single rule invocation.
type Option func(*options)

type options struct {
	message string
}

// WithMessage replaces the rule's default message.
// An empty message keeps the default.
func WithMessage(msg string) Option {
	return func(o *options) { o.message = msg }
}

func resolve(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o options) messageOr(def string) string {
	if o.message != "" {
		return o.message
	}
	return def
}
