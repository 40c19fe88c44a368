package rules

import "fmt"

// Option customizes a rule.
type Option func(*options)

type options struct {
	name      string
	priority  int
	exclusive bool
}

// WithName overrides the rule name used in errors and logs.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithPriority sets the evaluation priority. Lower runs first.
func WithPriority(priority int) Option {
	return func(o *options) {
		o.priority = priority
	}
}

// Exclusive marks the rule as exclusive: at most one per set, and a passing
// value ends the chain.
func Exclusive() Option {
	return func(o *options) {
		o.exclusive = true
	}
}

func newOptions(defaultName string, opts []Option) options {
	o := options{name: defaultName}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// MustBuild unwraps the result of a rule constructor, panicking on error.
// It is meant for rule sets declared at program start.
func MustBuild[T any](rule T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("failed to build rule: %v", err))
	}
	return rule
}
