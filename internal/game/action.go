package game

import (
	"unicode"

	"github.com/samdwyer/coinrush/internal/entity"
)

// Action is a replayable player command, stored in the history by its key.
type Action rune

const (
	ActionUp          Action = 'w'
	ActionDown        Action = 's'
	ActionLeft        Action = 'a'
	ActionRight       Action = 'd'
	ActionToggleSight Action = 'l'
)

// quitMarker terminates a saved history. Its keys are never actions.
const quitMarker = ":Q"

// ParseAction maps a key to an action, ignoring case.
func ParseAction(key rune) (Action, bool) {
	switch a := Action(unicode.ToLower(key)); a {
	case ActionUp, ActionDown, ActionLeft, ActionRight, ActionToggleSight:
		return a, true
	default:
		return 0, false
	}
}

// Direction returns the movement direction for move actions.
func (a Action) Direction() (entity.Direction, bool) {
	switch a {
	case ActionUp:
		return entity.DirUp, true
	case ActionDown:
		return entity.DirDown, true
	case ActionLeft:
		return entity.DirLeft, true
	case ActionRight:
		return entity.DirRight, true
	default:
		return 0, false
	}
}
