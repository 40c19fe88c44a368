package constraint

import (
	"cmp"
	"fmt"
	"slices"
)

// Set is an immutable, priority-ordered list of constraints.
//
// Ordering is ascending by Priority and stable: constraints sharing a
// priority keep the order in which they were added. Duplicates are kept.
type Set struct {
	constraints []Constraint
}

// NewSet builds a set from the given constraints.
func NewSet(constraints ...Constraint) (*Set, error) {
	b := NewSetBuilder()
	for _, c := range constraints {
		b.Add(c)
	}
	return b.Build()
}

// MustSet is like NewSet but panics on a configuration error.
func MustSet(constraints ...Constraint) *Set {
	s, err := NewSet(constraints...)
	if err != nil {
		panic(fmt.Sprintf("failed to build constraint set: %v", err))
	}
	return s
}

// Single wraps one constraint into a set.
func Single(c Constraint) (*Set, error) {
	return NewSet(c)
}

// Constraints returns the constraints in evaluation order.
func (s *Set) Constraints() []Constraint {
	return slices.Clone(s.constraints)
}

func (s *Set) Len() int {
	return len(s.constraints)
}

// SetBuilder collects constraints for a Set. The first error encountered is
// kept and reported by Build.
type SetBuilder struct {
	constraints []Constraint
	exclusive   Constraint
	err         error
}

func NewSetBuilder() *SetBuilder {
	return &SetBuilder{}
}

// Add appends a constraint. A nil constraint or a second exclusive one
// poisons the builder.
func (b *SetBuilder) Add(c Constraint) *SetBuilder {
	if b.err != nil {
		return b
	}
	if c == nil {
		b.err = ErrNilConstraint
		return b
	}
	if c.Exclusive() {
		if b.exclusive != nil {
			b.err = fmt.Errorf("%w: %q conflicts with %q", ErrDuplicateExclusive, c.Name(), b.exclusive.Name())
			return b
		}
		b.exclusive = c
	}
	b.constraints = append(b.constraints, c)
	return b
}

func (b *SetBuilder) Build() (*Set, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.constraints) == 0 {
		return nil, ErrEmptySet
	}

	sorted := slices.Clone(b.constraints)
	slices.SortStableFunc(sorted, func(a, c Constraint) int {
		return cmp.Compare(a.Priority(), c.Priority())
	})
	return &Set{constraints: sorted}, nil
}
