package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valid/pkg/constraint"
	"github.com/dmitrymomot/valid/pkg/messages"
	"github.com/dmitrymomot/valid/pkg/rules"
)

var catalog = messages.NewBuilder().
	Add(rules.KeyMandatoryField, "field is required").
	Add(rules.KeyMinLengthNotReached, "too short").
	Add(rules.KeyMaxLengthExceeded, "too long").
	Add(rules.KeyRegexNotSatisfied, "wrong format").
	Add(rules.KeyValueTooSmall, "too small").
	Add(rules.KeyValueTooLarge, "too large").
	Add(rules.KeyTagNotSatisfied, "invalid value").
	Build()

func evaluate(t *testing.T, c constraint.Constraint, payload any) constraint.Result {
	t.Helper()
	r, err := c.Evaluate(payload)
	require.NoError(t, err)
	return r
}
