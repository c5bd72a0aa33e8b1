package core

// Action is a semantic input, abstracted from physical keys so games react to
// intents rather than key codes.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow - move piece left
	ActionRight            // D, Right arrow - move piece right
	ActionSoftDrop         // S, Down arrow - drop one row now
	ActionHardDrop         // Space - drop to the floor and lock
	ActionRotateCW         // L, Up arrow - rotate clockwise
	ActionRotateCCW        // J, Z - rotate counterclockwise
	ActionRotate180        // K, X - half turn
	ActionPause            // W, P, Escape - pause/unpause
	ActionRestart          // R - start a new game
	ActionQuit             // Q, Ctrl+C - leave the session
	ActionUp               // menu navigation
	ActionDown             // menu navigation
	ActionConfirm          // Enter - confirm selection in menus
	ActionBack             // B - back to the previous screen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionRotate180:
		return "Rotate180"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputFrame holds the inputs collected during one simulation tick, in the
// order they arrived. Order matters for falling pieces: "left then rotate"
// and "rotate then left" can end in different places.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the triggered actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return len(f.actions) == 0
}

// Clear resets the frame for the next tick, reusing its storage.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{actions: append([]Action(nil), f.actions...)}
}
