// Package session runs the interactive gibberify prompt as an explicit
// state machine.
package session

// State is a step of the interactive session.
type State int

const (
	// StateWelcome prints the banner.
	StateWelcome State = iota
	// StateSelectLanguages asks for the source and then the target tag.
	StateSelectLanguages
	// StateTranslate reads text and prints its translation.
	StateTranslate
	// StateExit ends the session.
	StateExit
)

func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateSelectLanguages:
		return "select_languages"
	case StateTranslate:
		return "translate"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Event drives a transition between states.
type Event int

const (
	// EventAdvance moves to the next step once the current one is complete.
	EventAdvance Event = iota
	// EventBack returns to the previous step. It is raised by an interrupt.
	EventBack
	// EventQuit ends the session, for example at end of input.
	EventQuit
)

func (e Event) String() string {
	switch e {
	case EventAdvance:
		return "advance"
	case EventBack:
		return "back"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Transition returns the state that follows s on event e.
func Transition(s State, e Event) State {
	if e == EventQuit || s == StateExit {
		return StateExit
	}

	switch s {
	case StateWelcome:
		if e == EventAdvance {
			return StateSelectLanguages
		}
		return StateExit
	case StateSelectLanguages:
		if e == EventAdvance {
			return StateTranslate
		}
		return StateExit
	case StateTranslate:
		if e == EventAdvance {
			return StateTranslate
		}
		return StateSelectLanguages
	default:
		return StateExit
	}
}
