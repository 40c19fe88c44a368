package constraint

// Constraint is a single validation rule.
//
// Implementations are immutable once built and safe for concurrent use.
// Evaluate and ShouldStopChain return a *TypeMismatchError when the payload is
// not of the type the constraint validates.
type Constraint interface {
	// Name identifies the constraint in errors and logs.
	Name() string

	// Priority orders constraints inside a set; lower values run first.
	Priority() int

	// Exclusive reports whether at most one such constraint may live in a set.
	Exclusive() bool

	// Keys lists every error-message key the constraint may emit.
	Keys() []string

	Evaluate(payload any) (Result, error)

	// ShouldStopChain reports whether a passing result for payload ends the chain.
	ShouldStopChain(payload any) (bool, error)
}

// Messages resolves error-message keys. A missing or empty message is
// reported with ok == false.
type Messages interface {
	Message(key string) (message string, ok bool)
}

// Suggester is implemented by message sources that can propose a known key
// close to an unknown one.
type Suggester interface {
	Suggest(key string) (string, bool)
}

// MessageMap adapts a plain map to Messages.
type MessageMap map[string]string

func (m MessageMap) Message(key string) (string, bool) {
	msg, ok := m[key]
	return msg, ok && msg != ""
}
