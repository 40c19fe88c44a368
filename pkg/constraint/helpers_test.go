package constraint_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valid/pkg/constraint"
)

var testMessages = constraint.MessageMap{
	"FAILED":  "value rejected",
	"FAILED2": "value rejected again",
}

// recorder tracks which constraints were evaluated, in order.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

func (r *recorder) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

type stubOpts struct {
	pass      bool
	stop      bool
	exclusive bool
}

func stub(t *testing.T, rec *recorder, name string, priority int, o stubOpts) constraint.Constraint {
	t.Helper()
	c, err := constraint.New(constraint.Definition[string, bool]{
		Name:      name,
		Bound:     o.pass,
		Priority:  priority,
		Exclusive: o.exclusive,
		Keys:      []string{"FAILED"},
		Messages:  testMessages,
		Check: func(pass bool, _ string) (string, bool) {
			if rec != nil {
				rec.record(name)
			}
			return "FAILED", pass
		},
		StopChain: func(bool, string) bool { return o.stop },
	})
	require.NoError(t, err)
	return c
}

func names(set *constraint.Set) []string {
	out := make([]string, 0, set.Len())
	for _, c := range set.Constraints() {
		out = append(out, fmt.Sprintf("%s:%d", c.Name(), c.Priority()))
	}
	return out
}
