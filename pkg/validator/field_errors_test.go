package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valid/pkg/constraint"
	"github.com/dmitrymomot/valid/pkg/validator"
)

func TestFieldErrors(t *testing.T) {
	t.Parallel()

	errs := make(validator.FieldErrors)
	assert.Equal(t, "validation failed", errs.Error())

	errs.Add("name", "is too short")
	errs.Add("email", "is required")
	errs.Add("name", "is malformed")

	assert.True(t, errs.Has("name"))
	assert.False(t, errs.Has("age"))
	assert.Equal(t, "is too short", errs.Get("name"))
	assert.Empty(t, errs.Get("age"))
	assert.Equal(t, "validation error: email: is required, name: is too short", errs.Error())
}

func TestAggregateErr(t *testing.T) {
	t.Parallel()

	t.Run("all valid", func(t *testing.T) {
		t.Parallel()

		aggregate := validator.Aggregate{
			Status:  validator.AllValid,
			Results: map[constraint.Value]constraint.Result{constraint.NewText("Ann", "name"): constraint.Pass()},
		}
		assert.NoError(t, aggregate.Err())
	})

	t.Run("not valid", func(t *testing.T) {
		t.Parallel()

		aggregate := validator.Aggregate{
			Status: validator.AtLeastOneNotValid,
			Results: map[constraint.Value]constraint.Result{
				constraint.NewText("Ann", "name"): constraint.Pass(),
				constraint.NewText("", "email"):   constraint.Fail("is required"),
				constraint.NewText("x", "phone"):  constraint.Fail("is too short"),
				constraint.NewText("!!", "phone"): constraint.Fail("has a wrong format"),
			},
		}

		err := aggregate.Err()
		require.Error(t, err)

		var fields validator.FieldErrors
		require.True(t, errors.As(err, &fields))
		assert.False(t, fields.Has("name"))
		assert.Equal(t, []string{"is required"}, fields["email"])
		assert.Equal(t, []string{"has a wrong format", "is too short"}, fields["phone"])
	})
}
