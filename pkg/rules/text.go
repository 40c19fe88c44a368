package rules

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/valid/pkg/constraint"
)

// Unbounded disables the MaxLength limit.
const Unbounded = -1

// Mandatory rejects empty text when mandatory is true. Empty text always ends
// the chain, so optional fields skip the remaining rules.
func Mandatory(mandatory bool, msgs constraint.Messages, opts ...Option) (*constraint.Typed[string, bool], error) {
	o := newOptions("mandatory", opts)
	return constraint.New(constraint.Definition[string, bool]{
		Name:      o.name,
		Bound:     mandatory,
		Priority:  o.priority,
		Exclusive: o.exclusive,
		Keys:      []string{KeyMandatoryField},
		Messages:  msgs,
		Check: func(mandatory bool, text string) (string, bool) {
			if mandatory && text == "" {
				return KeyMandatoryField, false
			}
			return "", true
		},
		StopChain: func(_ bool, text string) bool {
			return text == ""
		},
	})
}

// MinLength requires at least min characters.
func MinLength(min int, msgs constraint.Messages, opts ...Option) (*constraint.Typed[string, int], error) {
	if min < 0 {
		return nil, fmt.Errorf("min_length %d: %w", min, ErrNegativeLength)
	}
	o := newOptions("min_length", opts)
	return constraint.New(constraint.Definition[string, int]{
		Name:      o.name,
		Bound:     min,
		Priority:  o.priority,
		Exclusive: o.exclusive,
		Keys:      []string{KeyMinLengthNotReached},
		Messages:  msgs,
		Check: func(min int, text string) (string, bool) {
			if length(text) < min {
				return KeyMinLengthNotReached, false
			}
			return "", true
		},
	})
}

// MaxLength allows at most max characters. Pass Unbounded to accept any length.
func MaxLength(max int, msgs constraint.Messages, opts ...Option) (*constraint.Typed[string, int], error) {
	if max < Unbounded {
		return nil, fmt.Errorf("max_length %d: %w", max, ErrNegativeLength)
	}
	o := newOptions("max_length", opts)
	return constraint.New(constraint.Definition[string, int]{
		Name:      o.name,
		Bound:     max,
		Priority:  o.priority,
		Exclusive: o.exclusive,
		Keys:      []string{KeyMaxLengthExceeded},
		Messages:  msgs,
		Check: func(max int, text string) (string, bool) {
			if max != Unbounded && length(text) > max {
				return KeyMaxLengthExceeded, false
			}
			return "", true
		},
	})
}

// Regex requires the whole text to match pattern. An empty pattern accepts
// everything.
func Regex(pattern string, msgs constraint.Messages, opts ...Option) (*constraint.Typed[string, string], error) {
	var re *regexp.Regexp
	if pattern != "" {
		var err error
		re, err = regexp.Compile(`^(?:` + pattern + `)$`)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
		}
	}

	o := newOptions("regex", opts)
	return constraint.New(constraint.Definition[string, string]{
		Name:      o.name,
		Bound:     pattern,
		Priority:  o.priority,
		Exclusive: o.exclusive,
		Keys:      []string{KeyRegexNotSatisfied},
		Messages:  msgs,
		Check: func(_ string, text string) (string, bool) {
			if re != nil && !re.MatchString(text) {
				return KeyRegexNotSatisfied, false
			}
			return "", true
		},
	})
}

// length counts user-perceived characters: composed and decomposed forms of
// the same text have the same length.
func length(text string) int {
	return utf8.RuneCountInString(norm.NFC.String(text))
}
