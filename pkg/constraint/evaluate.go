package constraint

// Evaluate runs payload through the set in priority order.
//
// It returns the first NOT_VALID result, or the first VALID result of a
// constraint that stops the chain, or else the result of the last constraint.
// Errors are contract violations (wrong payload type, undeclared key) and
// abort the walk immediately.
func Evaluate(payload any, set *Set) (Result, error) {
	if set == nil || len(set.constraints) == 0 {
		return Result{}, ErrEmptySet
	}

	var result Result
	for _, c := range set.constraints {
		r, err := c.Evaluate(payload)
		if err != nil {
			return Result{}, err
		}
		result = r

		if result.Status == StatusNotValid {
			return result, nil
		}

		stop, err := c.ShouldStopChain(payload)
		if err != nil {
			return Result{}, err
		}
		if stop {
			return result, nil
		}
	}

	return result, nil
}
