package collection

// Evaluator checks and optionally rewrites a value before it is stored.
type Evaluator func(value *any) error

// Option configures a container.
type Option func(*options)

type options struct {
	keyEvaluator   Evaluator
	valueEvaluator Evaluator
}

// WithKeyEvaluator sets the evaluator applied to dictionary keys. Vectors ignore it.
func WithKeyEvaluator(e Evaluator) Option {
	return func(o *options) {
		if e != nil {
			o.keyEvaluator = e
		}
	}
}

// WithValueEvaluator sets the evaluator applied to stored values.
func WithValueEvaluator(e Evaluator) Option {
	return func(o *options) {
		if e != nil {
			o.valueEvaluator = e
		}
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func evaluate(e Evaluator, v any) (any, error) {
	if e == nil {
		return v, nil
	}
	if err := e(&v); err != nil {
		return nil, err
	}
	return v, nil
}
