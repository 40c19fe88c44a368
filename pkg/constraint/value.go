package constraint

import "sync"

// Value is something that can be validated: a payload plus an optional tag
// identifying it to the caller (a field name, a form key).
type Value interface {
	Payload() any
	Tag() string
}

// Field is a mutable Value holding a payload of type T.
// Pointers to Field are compared by identity when used as map keys.
type Field[T any] struct {
	mu    sync.RWMutex
	value T
	tag   string
}

// Text is a Field holding a string, the most common validated value.
type Text = Field[string]

func NewField[T any](value T, tag string) *Field[T] {
	return &Field[T]{value: value, tag: tag}
}

func NewText(text, tag string) *Text {
	return NewField(text, tag)
}

// Payload returns the current value boxed as any.
func (f *Field[T]) Payload() any {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

func (f *Field[T]) Get() T {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

func (f *Field[T]) Tag() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.tag
}

// Set replaces both the value and the tag.
func (f *Field[T]) Set(value T, tag string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = value
	f.tag = tag
}
