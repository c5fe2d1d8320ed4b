// Package game provides the main game loop and state management.
package game

// State represents what the game loop is doing.
type State int

const (
	// StateResolving means the encounter is still applying actions and effects.
	StateResolving State = iota
	// StatePrompting means the encounter is waiting for a command.
	StatePrompting
	// StateQuit means the player asked to leave.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StatePrompting:
		return "prompting"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
