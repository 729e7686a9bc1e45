package tui

import "github.com/vovakirdan/kokaton-arcade/internal/core"

// opposite pairs each direction with the one it cancels.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// HoldTracker emulates held keys on terminals, which report presses and
// auto-repeats but never releases. A press keeps its direction held for a
// window of ticks; each repeat renews the window.
type HoldTracker struct {
	window    int
	remaining map[core.Action]int
}

// NewHoldTracker creates a tracker that holds a key for window ticks per press.
func NewHoldTracker(window int) *HoldTracker {
	return &HoldTracker{
		window:    max(window, 1),
		remaining: make(map[core.Action]int),
	}
}

// Press marks a direction as pressed. Pressing a direction releases its opposite.
func (h *HoldTracker) Press(a core.Action) {
	h.remaining[a] = h.window
	if o, ok := opposite[a]; ok {
		delete(h.remaining, o)
	}
}

// Apply marks every direction still within its window as held in the frame.
func (h *HoldTracker) Apply(f *core.InputFrame) {
	for a, n := range h.remaining {
		if n > 0 {
			f.Hold(a)
		}
	}
}

// Advance ages every press by one tick.
func (h *HoldTracker) Advance() {
	for a, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, a)
			continue
		}
		h.remaining[a] = n - 1
	}
}

// Reset releases every key.
func (h *HoldTracker) Reset() {
	clear(h.remaining)
}

// IsMove reports whether a is a direction the tracker handles.
func IsMove(a core.Action) bool {
	_, ok := opposite[a]
	return ok
}
