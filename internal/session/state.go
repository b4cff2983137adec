package session

import "fmt"

type State uint8

const (
	InGame State = iota
	Pause
	Out
)

// State implements [fmt.Stringer]
func (s State) String() string {
	switch s {
	case InGame:
		return "in game"
	case Pause:
		return "pause"
	case Out:
		return "out"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

type Result uint8

const (
	Playing Result = iota
	Won
	Lost
)

// Result implements [fmt.Stringer]
func (r Result) String() string {
	switch r {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Result(%d)", uint8(r))
	}
}

// stack is a push-down stack of states; the top one is current.
type stack []State

func (s stack) current() State {
	return s[len(s)-1]
}

func (s *stack) push(state State) {
	*s = append(*s, state)
}

func (s *stack) pop() State {
	top := s.current()
	*s = (*s)[:len(*s)-1]
	return top
}

// set replaces the whole stack with a single state.
func (s *stack) set(state State) {
	*s = append((*s)[:0], state)
}
