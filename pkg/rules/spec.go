package rules

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/valid/pkg/constraint"
)

// Rule type names accepted by FromSpec.
const (
	TypeMandatory = "mandatory"
	TypeMinLength = "min_length"
	TypeMaxLength = "max_length"
	TypeRegex     = "regex"
	TypeMin       = "min"
	TypeMax       = "max"
	TypeTag       = "tag"
)

// Spec describes a rule declaratively, typically decoded from YAML or JSON.
// Value is the rule bound; numeric bounds for min and max are float64 and
// validate float64 payloads.
type Spec struct {
	Type      string `yaml:"type" json:"type"`
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	Priority  int    `yaml:"priority" json:"priority"`
	Value     any    `yaml:"value" json:"value"`
	Exclusive bool   `yaml:"exclusive,omitempty" json:"exclusive,omitempty"`
}

func (s Spec) options() []Option {
	opts := []Option{WithPriority(s.Priority)}
	if s.Name != "" {
		opts = append(opts, WithName(s.Name))
	}
	if s.Exclusive {
		opts = append(opts, Exclusive())
	}
	return opts
}

// FromSpec builds the rule described by s.
func FromSpec(s Spec, msgs constraint.Messages) (constraint.Constraint, error) {
	opts := s.options()
	switch s.Type {
	case TypeMandatory:
		b, err := boolValue(s, true)
		if err != nil {
			return nil, err
		}
		return Mandatory(b, msgs, opts...)
	case TypeMinLength:
		n, err := intValue(s)
		if err != nil {
			return nil, err
		}
		return MinLength(n, msgs, opts...)
	case TypeMaxLength:
		n, err := intValue(s)
		if err != nil {
			return nil, err
		}
		return MaxLength(n, msgs, opts...)
	case TypeRegex:
		p, err := stringValue(s)
		if err != nil {
			return nil, err
		}
		return Regex(p, msgs, opts...)
	case TypeMin:
		f, err := floatValue(s)
		if err != nil {
			return nil, err
		}
		return Min(f, msgs, opts...)
	case TypeMax:
		f, err := floatValue(s)
		if err != nil {
			return nil, err
		}
		return Max(f, msgs, opts...)
	case TypeTag:
		t, err := stringValue(s)
		if err != nil {
			return nil, err
		}
		return Tag(t, msgs, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, s.Type)
	}
}

// SetFromSpecs builds a constraint set from a list of rule specs.
func SetFromSpecs(specs []Spec, msgs constraint.Messages) (*constraint.Set, error) {
	b := constraint.NewSetBuilder()
	for i, s := range specs {
		c, err := FromSpec(s, msgs)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, s.Type, err)
		}
		b.Add(c)
	}
	return b.Build()
}

func boolValue(s Spec, fallback bool) (bool, error) {
	switch v := s.Value.(type) {
	case nil:
		return fallback, nil
	case bool:
		return v, nil
	default:
		return false, invalidBound(s, "bool")
	}
}

func intValue(s Spec) (int, error) {
	switch v := s.Value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		if v > math.MaxInt {
			return 0, invalidBound(s, "int")
		}
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, invalidBound(s, "int")
		}
		return int(v), nil
	default:
		return 0, invalidBound(s, "int")
	}
}

func floatValue(s Spec) (float64, error) {
	switch v := s.Value.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, invalidBound(s, "number")
	}
}

func stringValue(s Spec) (string, error) {
	switch v := s.Value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", invalidBound(s, "string")
	}
}

func invalidBound(s Spec, want string) error {
	return fmt.Errorf("%w: %s wants a %s, got %T", ErrInvalidBound, s.Type, want, s.Value)
}
