package tui

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// HoldTracker turns key presses into a held state. Terminals send no key
// releases, only auto-repeated presses, so an action counts as held for a
// short window after its most recent press.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// opposite pairs actions where pressing one ends the other's hold.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// Press records a press at the given time.
func (h *HoldTracker) Press(a core.Action, at time.Time) {
	h.last[a] = at
	if o, ok := opposite[a]; ok {
		delete(h.last, o)
	}
}

// Holding reports whether a was pressed within the window before now.
func (h *HoldTracker) Holding(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	return ok && now.Sub(t) <= h.window
}

// Apply marks every held action on the frame and forgets expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.last {
		if now.Sub(t) > h.window {
			delete(h.last, a)
			continue
		}
		frame.Hold(a)
	}
}

// Reset forgets all presses.
func (h *HoldTracker) Reset() {
	clear(h.last)
}
