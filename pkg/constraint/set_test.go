package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valid/pkg/constraint"
)

func TestSetOrdering(t *testing.T) {
	t.Parallel()

	t.Run("ascending priority regardless of insertion order", func(t *testing.T) {
		t.Parallel()
		set, err := constraint.NewSet(
			stub(t, nil, "c5", 5, stubOpts{pass: true}),
			stub(t, nil, "c1", 1, stubOpts{pass: true}),
			stub(t, nil, "c3", 3, stubOpts{pass: true}),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"c1:1", "c3:3", "c5:5"}, names(set))
	})

	t.Run("equal priorities keep insertion order", func(t *testing.T) {
		t.Parallel()
		set, err := constraint.NewSetBuilder().
			Add(stub(t, nil, "b", 2, stubOpts{pass: true})).
			Add(stub(t, nil, "a", 2, stubOpts{pass: true})).
			Add(stub(t, nil, "first", 0, stubOpts{pass: true})).
			Add(stub(t, nil, "c", 2, stubOpts{pass: true})).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"first:0", "b:2", "a:2", "c:2"}, names(set))
	})

	t.Run("duplicates are retained", func(t *testing.T) {
		t.Parallel()
		c := stub(t, nil, "dup", 1, stubOpts{pass: true})
		set, err := constraint.NewSet(c, c)
		require.NoError(t, err)
		assert.Equal(t, 2, set.Len())
	})

	t.Run("constraints slice is a copy", func(t *testing.T) {
		t.Parallel()
		set := constraint.MustSet(stub(t, nil, "x", 1, stubOpts{pass: true}))
		cs := set.Constraints()
		cs[0] = nil
		assert.NotNil(t, set.Constraints()[0])
	})
}

func TestSetConfigurationErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, err := constraint.NewSet()
		assert.ErrorIs(t, err, constraint.ErrEmptySet)
		assert.Panics(t, func() { constraint.MustSet() })
	})

	t.Run("nil constraint", func(t *testing.T) {
		t.Parallel()
		_, err := constraint.NewSetBuilder().
			Add(nil).
			Add(stub(t, nil, "x", 1, stubOpts{pass: true})).
			Build()
		assert.ErrorIs(t, err, constraint.ErrNilConstraint)
	})

	t.Run("second exclusive constraint", func(t *testing.T) {
		t.Parallel()
		_, err := constraint.NewSet(
			stub(t, nil, "only", 1, stubOpts{pass: true, exclusive: true}),
			stub(t, nil, "other", 2, stubOpts{pass: true}),
			stub(t, nil, "again", 3, stubOpts{pass: true, exclusive: true}),
		)
		assert.ErrorIs(t, err, constraint.ErrDuplicateExclusive)
		assert.Contains(t, err.Error(), `"again"`)
	})

	t.Run("single exclusive is fine", func(t *testing.T) {
		t.Parallel()
		set, err := constraint.Single(stub(t, nil, "only", 1, stubOpts{pass: true, exclusive: true}))
		require.NoError(t, err)
		assert.Equal(t, 1, set.Len())
	})
}
