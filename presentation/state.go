// Package presentation holds the four-state controller of a reveal session
package presentation

// State is the active phase of the session
type State int

const (
	StateLocked State = iota
	StateIntro
	StateLetter
	StateGift
)

// String returns the state name used in logs
func (s State) String() string {
	switch s {
	case StateLocked:
		return "LOCKED"
	case StateIntro:
		return "INTRO"
	case StateLetter:
		return "LETTER"
	case StateGift:
		return "GIFT"
	}
	return "UNKNOWN"
}

// AllStates lists the states in session order
var AllStates = []State{StateLocked, StateIntro, StateLetter, StateGift}
