package core

// Action represents a semantic game input, abstracted from physical key presses.
// The driver hands the game at most one Action per frame.
type Action int

const (
	ActionNone  Action = iota
	ActionStart        // P, Enter - start a new run from the menu
	ActionQuit         // Q - request program exit from the menu
	ActionFlap         // Space, Up, W - flap the dragon's wings
	ActionAny          // any other key (continues from the death screen)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	case ActionFlap:
		return "Flap"
	case ActionAny:
		return "Any"
	default:
		return "Unknown"
	}
}

// IsKey reports whether the action came from a key press at all.
func (a Action) IsKey() bool {
	return a != ActionNone
}
