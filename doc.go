// Package valid is a constraint-based value validation engine.
//
// Values carry a tag and a payload. Constraints are prioritized checks with
// an error-message key; they are grouped into immutable sets and evaluated
// in priority order until one fails or stops the chain. Validation runs on
// an execution strategy (inline, one worker, or a pool) and every result is
// delivered back on the origin that asked for it.
//
// The packages build on each other:
//
//   - pkg/constraint: values, results, constraints, sets and evaluation
//   - pkg/rules: built-in text and numeric rules and declarative rule specs
//   - pkg/messages: message catalogs from YAML, JSON or Redis
//   - pkg/origin: origin contexts that results are marshalled back to
//   - pkg/executor: inline, single-worker and pool strategies
//   - pkg/validator: the validator, bulk validation and the observer
//   - pkg/cli: the valid command line tool
//
// Basic usage:
//
//	catalog := messages.New(map[string]string{
//		rules.KeyMandatoryField:      "is required",
//		rules.KeyMinLengthNotReached: "is too short",
//	})
//	set := constraint.MustSet(
//		rules.MustBuild(rules.Mandatory(true, catalog, rules.WithPriority(0))),
//		rules.MustBuild(rules.MinLength(3, catalog, rules.WithPriority(1))),
//	)
//
//	loop := origin.NewLoop()
//	go loop.Run(ctx)
//
//	v, err := validator.New(loop, validator.WithStrategy(executor.StrategyPool))
//	if err != nil {
//		return err
//	}
//	defer v.Close()
//
//	loop.Post(func(ctx context.Context) {
//		_ = v.Validate(ctx, constraint.NewText("Al", "name"), set,
//			func(ctx context.Context, value constraint.Value, result constraint.Result) {
//				// runs on the loop
//			})
//	})
package valid
