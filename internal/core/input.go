package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up
	ActionDown           // S, Down arrow - move down
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionFire           // Space - fire a beam
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q - leave the game
	ActionPause          // P, Escape - pause/unpause game
)

// MoveActions lists the directional actions in a stable order.
var MoveActions = []Action{ActionUp, ActionDown, ActionLeft, ActionRight}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
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
//
// It carries two kinds of input: actions whose key is currently held (movement),
// and a queue of discrete events (fire, quit, pause) in the order they arrived.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Held maps action types to whether their key is down this frame.
	Held map[Action]bool

	// Queue holds discrete events in arrival order.
	Queue []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame and appends it to the event queue.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Queue = append(f.Queue, a)
}

// Hold marks an action's key as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// IsHeld returns true if the given action's key is down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Events returns the queued discrete events in arrival order.
func (f InputFrame) Events() []Action {
	return f.Queue
}

// HeldActions returns the held actions in MoveActions order followed by any
// other held actions in Action order.
func (f InputFrame) HeldActions() []Action {
	var out []Action
	for _, a := range MoveActions {
		if f.Held[a] {
			out = append(out, a)
		}
	}
	for a := ActionNone; a <= ActionPause; a++ {
		if f.Held[a] && !isMoveAction(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Queue = f.Queue[:0]
}

func isMoveAction(a Action) bool {
	for _, m := range MoveActions {
		if m == a {
			return true
		}
	}
	return false
}
