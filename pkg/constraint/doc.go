// Package constraint defines the building blocks of value validation: the values
// being validated, the rules ("constraints") that judge them, ordered sets of
// rules and the engine that walks a set.
//
// The package is pure and synchronous. Nothing here starts goroutines or knows
// where it runs, which is what lets the validator package execute the same
// evaluation inline, on a dedicated worker or on a pool.
//
// # Values
//
// A Value pairs an opaque payload with an optional tag. Field is the stock
// implementation:
//
//	username := constraint.NewText("jdoe", "username")
//	age := constraint.NewField(42, "age")
//
// Values are used as map keys by the aggregation layers, so identity is the
// pointer identity of the Field, never the payload.
//
// # Constraints
//
// A Constraint evaluates a payload to a Result and tells the engine whether a
// passing result ends the chain. Typed implements the contract for a concrete
// payload type V and bound type C:
//
//	minLen, err := constraint.New(constraint.Definition[string, int]{
//	    Name:     "min_length",
//	    Bound:    3,
//	    Priority: 1,
//	    Keys:     []string{"MIN_LENGTH_NOT_REACHED"},
//	    Messages: catalog,
//	    Check: func(min int, s string) (string, bool) {
//	        return "MIN_LENGTH_NOT_REACHED", len(s) >= min
//	    },
//	})
//
// Every declared key must resolve to a message when the constraint is built.
// A payload of the wrong type is reported as a *TypeMismatchError, never as a
// failed validation.
//
// # Sets and evaluation
//
// A Set keeps constraints sorted by ascending priority. Equal priorities keep
// their insertion order and duplicates are retained. Evaluate walks a set and
// returns the first failure, the first success of a chain-stopping constraint,
// or the result of the last constraint.
//
//	set, err := constraint.NewSetBuilder().
//	    Add(mandatory).
//	    Add(minLen).
//	    Build()
//	result, err := constraint.Evaluate(username.Payload(), set)
package constraint
