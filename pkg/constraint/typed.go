package constraint

import (
	"fmt"
	"reflect"
	"slices"
)

// Definition describes a constraint over payloads of type V, judged against a
// bound of type C (a length, a pattern, a flag).
type Definition[V, C any] struct {
	Name      string
	Bound     C
	Priority  int
	Exclusive bool

	// Keys declares every key Check may report. All of them must resolve in Messages.
	Keys     []string
	Messages Messages

	// Check reports whether value satisfies bound. When it does not, key names
	// the error message to use.
	Check func(bound C, value V) (key string, ok bool)

	// StopChain reports whether a passing value ends evaluation of the set.
	// Nil means never, unless the constraint is exclusive.
	StopChain func(bound C, value V) bool
}

// Typed is the generic Constraint implementation built from a Definition.
type Typed[V, C any] struct {
	name      string
	bound     C
	priority  int
	exclusive bool
	keys      []string
	messages  map[string]string
	check     func(C, V) (string, bool)
	stopChain func(C, V) bool
}

var _ Constraint = (*Typed[string, int])(nil)

// New validates def and resolves all of its messages up front, so a
// misconfigured constraint fails here rather than during evaluation.
func New[V, C any](def Definition[V, C]) (*Typed[V, C], error) {
	name := def.Name
	if name == "" {
		name = fmt.Sprintf("constraint[%s]", typeName[V]())
	}
	if def.Check == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrNilCheck)
	}
	if len(def.Keys) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoKeys)
	}
	if def.Messages == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrNilMessages)
	}

	messages := make(map[string]string, len(def.Keys))
	var missing []string
	suggestions := make(map[string]string)
	for _, key := range def.Keys {
		msg, ok := def.Messages.Message(key)
		if !ok || msg == "" {
			missing = append(missing, key)
			if s, ok := def.Messages.(Suggester); ok {
				if suggestion, found := s.Suggest(key); found {
					suggestions[key] = suggestion
				}
			}
			continue
		}
		messages[key] = msg
	}
	if len(missing) > 0 {
		return nil, &MissingMessageError{
			Constraint:  name,
			Keys:        missing,
			Suggestions: suggestions,
		}
	}

	return &Typed[V, C]{
		name:      name,
		bound:     def.Bound,
		priority:  def.Priority,
		exclusive: def.Exclusive,
		keys:      slices.Clone(def.Keys),
		messages:  messages,
		check:     def.Check,
		stopChain: def.StopChain,
	}, nil
}

// MustNew is like New but panics on a configuration error.
func MustNew[V, C any](def Definition[V, C]) *Typed[V, C] {
	c, err := New(def)
	if err != nil {
		panic(fmt.Sprintf("failed to build constraint: %v", err))
	}
	return c
}

func (t *Typed[V, C]) Name() string    { return t.name }
func (t *Typed[V, C]) Priority() int   { return t.priority }
func (t *Typed[V, C]) Exclusive() bool { return t.exclusive }
func (t *Typed[V, C]) Bound() C        { return t.bound }

func (t *Typed[V, C]) Keys() []string {
	return slices.Clone(t.keys)
}

func (t *Typed[V, C]) Evaluate(payload any) (Result, error) {
	v, err := t.cast(payload)
	if err != nil {
		return Result{}, err
	}

	key, ok := t.check(t.bound, v)
	if ok {
		return Pass(), nil
	}

	msg, declared := t.messages[key]
	if !declared {
		return Result{}, fmt.Errorf("%w: constraint %q reported %q", ErrUndeclaredKey, t.name, key)
	}
	return Fail(msg), nil
}

func (t *Typed[V, C]) ShouldStopChain(payload any) (bool, error) {
	v, err := t.cast(payload)
	if err != nil {
		return false, err
	}
	if t.exclusive {
		return true, nil
	}
	if t.stopChain == nil {
		return false, nil
	}
	return t.stopChain(t.bound, v), nil
}

// cast asserts the payload type. A nil payload is treated as the zero V.
func (t *Typed[V, C]) cast(payload any) (V, error) {
	var zero V
	if payload == nil {
		return zero, nil
	}
	v, ok := payload.(V)
	if !ok {
		return zero, NewTypeMismatchError(t.name, typeName[V](), fmt.Sprintf("%T", payload))
	}
	return v, nil
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
