package cli

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/valid/pkg/constraint"
	"github.com/dmitrymomot/valid/pkg/rules"
)

// Field kinds accepted in a form.
const (
	KindText   = "text"
	KindNumber = "number"
)

// Form is a document of fields to check.
//
//	fields:
//	  - tag: name
//	    value: "Al"
//	    rules:
//	      - {type: mandatory, priority: 0, value: true}
//	      - {type: min_length, priority: 1, value: 3}
type Form struct {
	Fields []FormField `yaml:"fields" json:"fields"`
}

// FormField is one value with its rules. Kind defaults to text.
type FormField struct {
	Tag   string       `yaml:"tag" json:"tag"`
	Kind  string       `yaml:"kind,omitempty" json:"kind,omitempty"`
	Value any          `yaml:"value" json:"value"`
	Rules []rules.Spec `yaml:"rules" json:"rules"`
}

// Entry is a form field turned into a value and its constraint set.
type Entry struct {
	Value constraint.Value
	Set   *constraint.Set
}

// ParseForm decodes a YAML (or JSON) form document.
func ParseForm(data []byte) (*Form, error) {
	var form Form
	if err := yaml.Unmarshal(data, &form); err != nil {
		return nil, errors.Join(ErrInvalidForm, err)
	}
	if len(form.Fields) == 0 {
		return nil, fmt.Errorf("%w: no fields", ErrInvalidForm)
	}
	return &form, nil
}

// LoadForm reads and decodes a form file.
func LoadForm(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form %q: %w", path, err)
	}
	return ParseForm(data)
}

// Build turns every field into an entry, keeping the form order.
// Tags must be unique.
func (f *Form) Build(msgs constraint.Messages) ([]Entry, error) {
	seen := make(map[string]struct{}, len(f.Fields))
	entries := make([]Entry, 0, len(f.Fields))
	for i, field := range f.Fields {
		if field.Tag == "" {
			return nil, fmt.Errorf("%w: field %d has no tag", ErrInvalidForm, i)
		}
		if _, dup := seen[field.Tag]; dup {
			return nil, fmt.Errorf("%w: duplicate tag %q", ErrInvalidForm, field.Tag)
		}
		seen[field.Tag] = struct{}{}

		value, err := field.value()
		if err != nil {
			return nil, err
		}
		set, err := rules.SetFromSpecs(field.Rules, msgs)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Tag, err)
		}
		entries = append(entries, Entry{Value: value, Set: set})
	}
	return entries, nil
}

func (f FormField) value() (constraint.Value, error) {
	switch f.Kind {
	case "", KindText:
		switch v := f.Value.(type) {
		case nil:
			return constraint.NewText("", f.Tag), nil
		case string:
			return constraint.NewText(v, f.Tag), nil
		default:
			return nil, fmt.Errorf("%w: field %q: text value must be a string, got %T", ErrInvalidForm, f.Tag, f.Value)
		}
	case KindNumber:
		switch v := f.Value.(type) {
		case int:
			return constraint.NewField(float64(v), f.Tag), nil
		case int64:
			return constraint.NewField(float64(v), f.Tag), nil
		case uint64:
			return constraint.NewField(float64(v), f.Tag), nil
		case float64:
			return constraint.NewField(v, f.Tag), nil
		default:
			return nil, fmt.Errorf("%w: field %q: number value must be numeric, got %T", ErrInvalidForm, f.Tag, f.Value)
		}
	default:
		return nil, fmt.Errorf("%w: field %q: unknown kind %q", ErrInvalidForm, f.Tag, f.Kind)
	}
}
