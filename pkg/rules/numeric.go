package rules

import (
	"fmt"

	"github.com/dmitrymomot/valid/pkg/constraint"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range is an inclusive numeric interval.
type Range[T Numeric] struct {
	Min T
	Max T
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.Min, r.Max)
}

func Min[T Numeric](min T, msgs constraint.Messages, opts ...Option) (*constraint.Typed[T, T], error) {
	o := newOptions("min", opts)
	return constraint.New(constraint.Definition[T, T]{
		Name:      o.name,
		Bound:     min,
		Priority:  o.priority,
		Exclusive: o.exclusive,
		Keys:      []string{KeyValueTooSmall},
		Messages:  msgs,
		Check: func(min T, value T) (string, bool) {
			if value < min {
				return KeyValueTooSmall, false
			}
			return "", true
		},
	})
}

func Max[T Numeric](max T, msgs constraint.Messages, opts ...Option) (*constraint.Typed[T, T], error) {
	o := newOptions("max", opts)
	return constraint.New(constraint.Definition[T, T]{
		Name:      o.name,
		Bound:     max,
		Priority:  o.priority,
		Exclusive: o.exclusive,
		Keys:      []string{KeyValueTooLarge},
		Messages:  msgs,
		Check: func(max T, value T) (string, bool) {
			if value > max {
				return KeyValueTooLarge, false
			}
			return "", true
		},
	})
}

// Between requires min <= value <= max, reporting which side was crossed.
func Between[T Numeric](min, max T, msgs constraint.Messages, opts ...Option) (*constraint.Typed[T, Range[T]], error) {
	if min > max {
		return nil, fmt.Errorf("between %v and %v: %w", min, max, ErrInvalidRange)
	}
	o := newOptions("between", opts)
	return constraint.New(constraint.Definition[T, Range[T]]{
		Name:      o.name,
		Bound:     Range[T]{Min: min, Max: max},
		Priority:  o.priority,
		Exclusive: o.exclusive,
		Keys:      []string{KeyValueTooSmall, KeyValueTooLarge},
		Messages:  msgs,
		Check: func(r Range[T], value T) (string, bool) {
			switch {
			case value < r.Min:
				return KeyValueTooSmall, false
			case value > r.Max:
				return KeyValueTooLarge, false
			}
			return "", true
		},
	})
}
