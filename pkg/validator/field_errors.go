package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// FieldErrors maps value tags to the error messages reported for them.
type FieldErrors map[string][]string

// Error lists the first message of every tag, ordered by tag.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, tag := range slices.Sorted(maps.Keys(e)) {
		if msgs := e[tag]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", tag, msgs[0]))
		}
	}
	return "validation error: " + strings.Join(parts, ", ")
}

func (e FieldErrors) Add(tag, message string) {
	e[tag] = append(e[tag], message)
}

// Get returns the first message for tag.
func (e FieldErrors) Get(tag string) string {
	if msgs := e[tag]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func (e FieldErrors) Has(tag string) bool {
	return len(e[tag]) > 0
}

// Err returns the failed results as FieldErrors, or nil when every value is
// valid. Messages sharing a tag are sorted.
func (a Aggregate) Err() error {
	if a.Valid() {
		return nil
	}

	errs := make(FieldErrors)
	for value, result := range a.Results {
		if !result.Valid() {
			errs.Add(value.Tag(), result.Error)
		}
	}
	for _, msgs := range errs {
		slices.Sort(msgs)
	}
	return errs
}
