package core

// Action represents a semantic flight-control action, abstracted from
// physical key presses. The platform maps keys to actions; the game maps
// actions onto the lander's throttles.
type Action int

const (
	ActionNone         Action = iota
	ActionThrottleUp          // W, Up arrow - ramp the main engine up
	ActionThrottleDown        // S, Down arrow - ramp the main engine down
	ActionFullBurn            // F - main throttle straight to 1.0
	ActionCutoff              // X - main throttle straight to 0.0
	ActionWest                // A, Left arrow - lateral thrust toward -x
	ActionEast                // D, Right arrow - lateral thrust toward +x
	ActionNorth               // I - lateral thrust toward +y
	ActionSouth               // K - lateral thrust toward -y
	ActionConfirm             // Enter - confirm selection
	ActionBack                // B, Escape - back to previous screen
	ActionRestart             // R - new attempt after touchdown
	ActionQuit                // Q, Ctrl+C - exit
	ActionPause               // P - pause/unpause descent
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrottleUp:
		return "ThrottleUp"
	case ActionThrottleDown:
		return "ThrottleDown"
	case ActionFullBurn:
		return "FullBurn"
	case ActionCutoff:
		return "Cutoff"
	case ActionWest:
		return "West"
	case ActionEast:
		return "East"
	case ActionNorth:
		return "North"
	case ActionSouth:
		return "South"
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
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
