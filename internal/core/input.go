package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - raise selection (light level)
	ActionDown           // S, Down arrow - lower selection
	ActionShoot          // Space - primary action (launch the ball)
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game

	// ActionLevel1 through ActionLevel9 pick a discrete level directly (keys 1-9).
	ActionLevel1
	ActionLevel2
	ActionLevel3
	ActionLevel4
	ActionLevel5
	ActionLevel6
	ActionLevel7
	ActionLevel8
	ActionLevel9
)

// LevelAction returns the ActionLevelN action for n in [1, 9], or ActionNone.
func LevelAction(n int) Action {
	if n < 1 || n > 9 {
		return ActionNone
	}
	return ActionLevel1 + Action(n-1)
}

// Level returns n for ActionLevelN and 0 for every other action.
func (a Action) Level() int {
	if a < ActionLevel1 || a > ActionLevel9 {
		return 0
	}
	return int(a-ActionLevel1) + 1
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionShoot:
		return "Shoot"
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
	}
	if n := a.Level(); n > 0 {
		return "Level" + string(rune('0'+n))
	}
	return "Unknown"
}

// InputFrame represents the input state for a single player during one simulation tick.
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

// Level returns the highest ActionLevelN present in the frame, or 0.
func (f InputFrame) Level() int {
	for n := 9; n >= 1; n-- {
		if f.Has(LevelAction(n)) {
			return n
		}
	}
	return 0
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
