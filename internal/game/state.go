// Package game provides the session model, replay and the terminal game loop.
package game

// State represents the current session state.
type State int

const (
	// StateExplore is the default mode: the avatar roams and collects coins.
	StateExplore State = iota
	// StateWon is reached once every placed coin has been collected.
	StateWon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}
