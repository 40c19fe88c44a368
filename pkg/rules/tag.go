package rules

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/valid/pkg/constraint"
)

// validate is shared: go-playground validators cache parsed tags and are safe
// for concurrent use.
var validate = sync.OnceValue(func() *validator.Validate {
	return validator.New()
})

// Tag checks the payload against a go-playground/validator tag expression,
// for example "email", "uuid4" or "oneof=red green". The tag is probed when the
// rule is built so unknown validators fail early.
func Tag(tag string, msgs constraint.Messages, opts ...Option) (*constraint.Typed[any, string], error) {
	if err := probeTag(tag); err != nil {
		return nil, err
	}

	o := newOptions("tag:"+tag, opts)
	return constraint.New(constraint.Definition[any, string]{
		Name:      o.name,
		Bound:     tag,
		Priority:  o.priority,
		Exclusive: o.exclusive,
		Keys:      []string{KeyTagNotSatisfied},
		Messages:  msgs,
		Check: func(tag string, value any) (string, bool) {
			if err := validate().Var(value, tag); err != nil {
				return KeyTagNotSatisfied, false
			}
			return "", true
		},
	})
}

// probeTag runs the tag once against an empty string. The validator panics on
// tags it cannot parse.
func probeTag(tag string) (err error) {
	if tag == "" {
		return fmt.Errorf("%w: empty tag", ErrInvalidTag)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w %q: %v", ErrInvalidTag, tag, r)
		}
	}()
	_ = validate().Var("", tag)
	return nil
}
