package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, h - shift left (held)
	ActionRight            // Right arrow, l - shift right (held)
	ActionRotateCW         // Down arrow, j, x - rotate clockwise
	ActionRotateCCW        // Up arrow, k, z - rotate counterclockwise
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P, Space - pause/unpause game
	ActionDebug            // D - toggle the cell-code overlay
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
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
//
// Actions holds edge-triggered presses that happened since the last tick.
// Held holds level-triggered state: keys the platform considers down right
// now. Terminals report no key releases, so the platform derives Held from
// key repeat (see tui.HoldTracker).
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action as held down.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Holding returns true if the action is held down.
func (f InputFrame) Holding(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets presses and held state for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
