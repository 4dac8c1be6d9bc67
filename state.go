package typewriter

import (
	"fmt"
	"slices"
)

// Phase is the lifecycle position of a Typist run.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseTyping
	PhasePausing
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTyping:
		return "typing"
	case PhasePausing:
		return "pausing"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// State is a read-only snapshot of a run.
//
// Line is the index of the line being typed, or the number of lines once the
// run is done. Revealed holds the revealed rune count per line: lines before
// Line are complete and lines after it are still zero.
type State struct {
	Phase    Phase
	Line     int
	Revealed []int
}

func newState(lines int) State {
	return State{Revealed: make([]int, lines)}
}

func (s State) clone() State {
	s.Revealed = slices.Clone(s.Revealed)
	return s
}

// Active reports whether the cursor belongs on line i: the line being typed,
// or the last line once the run is done.
func (s State) Active(i int) bool {
	switch s.Phase {
	case PhaseTyping, PhasePausing:
		return i == s.Line
	case PhaseDone:
		return len(s.Revealed) > 0 && i == len(s.Revealed)-1
	default:
		return false
	}
}
