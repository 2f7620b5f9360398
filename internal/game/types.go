// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Verdict: per-letter result of a guess (correct/present/absent).
//   - Result:  ordered verdicts for one guess, aligned with the guess letters.
//   - State:   lifecycle of a single session (in_progress → won/lost).
//   - Attempt: one scored guess in a session's history.

package game

import "fmt"

// Verdict represents the evaluation result for a single letter in a guess.
//   - Correct: letter is in the answer at this exact position.
//   - Present: letter is in the answer, but not at this position.
//   - Absent:  letter is not in the answer, or every copy was already claimed.
type Verdict int

const (
	Absent Verdict = iota
	Present
	Correct
)

// String returns the wire name of v.
func (v Verdict) String() string {
	switch v {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// MarshalText encodes v as its wire name so JSON carries "correct" etc.
func (v Verdict) MarshalText() ([]byte, error) {
	switch v {
	case Absent, Present, Correct:
		return []byte(v.String()), nil
	default:
		return nil, fmt.Errorf("game: unknown verdict %d", int(v))
	}
}

// UnmarshalText parses a wire name produced by MarshalText.
func (v *Verdict) UnmarshalText(b []byte) error {
	switch string(b) {
	case "absent":
		*v = Absent
	case "present":
		*v = Present
	case "correct":
		*v = Correct
	default:
		return fmt.Errorf("game: unknown verdict %q", string(b))
	}
	return nil
}

// Result is the ordered list of verdicts for one guess.
// Result[i] always describes guess letter i.
type Result []Verdict

// Solved reports whether every verdict is Correct.
func (r Result) Solved() bool {
	if len(r) == 0 {
		return false
	}
	for _, v := range r {
		if v != Correct {
			return false
		}
	}
	return true
}

// State is the coarse lifecycle of a session.
type State uint8

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "in_progress":
		*s = InProgress
	case "won":
		*s = Won
	case "lost":
		*s = Lost
	default:
		return fmt.Errorf("game: unknown state %q", string(b))
	}
	return nil
}

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool { return s == Won || s == Lost }

// Attempt is one accepted guess together with its verdicts.
type Attempt struct {
	Guess  string `json:"guess"`
	Result Result `json:"verdicts"`
}
