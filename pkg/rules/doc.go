// Package rules provides ready-made constraints for the validation engine.
//
// Every constructor takes the bound it checks against, a message source and
// optional settings, and returns a *constraint.Typed that can be added to a
// constraint.Set. Message keys are resolved when the rule is built, so a
// catalog missing a key is reported up front instead of during validation.
//
// Text rules:
//   - Mandatory  fails on empty text when the bound is true and always ends the chain on empty text
//   - MinLength  minimum length in runes after NFC normalization
//   - MaxLength  maximum length in runes, -1 means unbounded
//   - Regex      whole-string regular expression match
//
// Numeric rules work on any Numeric type: Min, Max and Between.
//
// Tag adapts a go-playground/validator tag expression such as "email" or
// "uuid4" into a constraint over any payload.
//
// # Usage
//
//	catalog := messages.NewBuilder().
//	    Add(rules.KeyMandatoryField, "this field is required").
//	    Add(rules.KeyMinLengthNotReached, "too short").
//	    Build()
//
//	set := constraint.MustSet(
//	    rules.MustBuild(rules.Mandatory(true, catalog, rules.WithPriority(0))),
//	    rules.MustBuild(rules.MinLength(3, catalog, rules.WithPriority(1))),
//	)
//
// Rules can also be described declaratively with Spec and built through
// FromSpec, which is how the valid CLI turns form documents into sets.
package rules
