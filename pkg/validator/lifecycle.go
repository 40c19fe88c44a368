package validator

import (
	"slices"
	"sync/atomic"
)

// State is the lifecycle stage of a single validation invocation.
type State int32

const (
	StateIdle State = iota
	StateDispatched
	StateRunning
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDispatched:
		return "dispatched"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

var transitions = map[State][]State{
	StateIdle:       {StateDispatched},
	StateDispatched: {StateRunning, StateFailed},
	StateRunning:    {StateCompleted, StateFailed},
}

// CanTransition reports whether the lifecycle allows moving from one state to another.
func CanTransition(from, to State) bool {
	return slices.Contains(transitions[from], to)
}

// lifecycle tracks an invocation's state. Transitions are atomic, so a result
// can be completed at most once even when several goroutines race.
type lifecycle struct {
	state atomic.Int32
}

func (l *lifecycle) current() State {
	return State(l.state.Load())
}

func (l *lifecycle) transition(to State) error {
	for {
		from := l.current()
		if !CanTransition(from, to) {
			return NewTransitionError(from, to)
		}
		if l.state.CompareAndSwap(int32(from), int32(to)) {
			return nil
		}
	}
}
