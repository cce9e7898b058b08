package tui

import (
	"time"

	"github.com/vovakirdan/sky-scroller/internal/core"
)

const (
	// DefaultRepeatDelay is how long a first press counts as held. It covers
	// the pause before terminal key auto-repeat starts.
	DefaultRepeatDelay = 600 * time.Millisecond

	// DefaultHoldWindow is how long a repeated press counts as held. Repeats
	// arrive much faster than the initial delay.
	DefaultHoldWindow = 180 * time.Millisecond
)

// heldKey is the last press of a movement key.
type heldKey struct {
	seen      time.Time
	repeating bool
}

// HeldInput turns terminal key presses into a polled "is held" vector.
// Terminals only report presses, so movement keys are held until no press
// has arrived for the hold window. Other actions fire on the next frame only.
type HeldInput struct {
	delay   time.Duration
	window  time.Duration
	held    map[core.Action]heldKey
	pending core.InputFrame
}

// NewHeldInput creates an input tracker. A first press is held for delay,
// later auto-repeated presses for window. Zero values use the defaults.
func NewHeldInput(delay, window time.Duration) *HeldInput {
	if delay <= 0 {
		delay = DefaultRepeatDelay
	}
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldInput{
		delay:   delay,
		window:  window,
		held:    make(map[core.Action]heldKey),
		pending: core.NewInputFrame(),
	}
}

// isHeldAction reports whether an action is tracked as a held key.
func isHeldAction(a core.Action) bool {
	return a == core.ActionUp || a == core.ActionDown
}

// expired reports whether k no longer counts as held at now.
func (h *HeldInput) expired(k heldKey, now time.Time) bool {
	window := h.delay
	if k.repeating {
		window = h.window
	}
	return now.Sub(k.seen) >= window
}

// Press records a key press at now.
func (h *HeldInput) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !isHeldAction(a) {
		h.pending.Set(a)
		return
	}

	prev, ok := h.held[a]
	repeating := ok && !h.expired(prev, now)

	// Opposite directions cancel: the newest press wins.
	delete(h.held, core.ActionUp)
	delete(h.held, core.ActionDown)
	h.held[a] = heldKey{seen: now, repeating: repeating}
}

// Frame returns the actions held at now and consumes one-shot actions.
func (h *HeldInput) Frame(now time.Time) core.InputFrame {
	frame := h.pending.Clone()
	for a, k := range h.held {
		if h.expired(k, now) {
			delete(h.held, a)
			continue
		}
		frame.Set(a)
	}
	h.pending.Clear()
	return frame
}

// Reset forgets every press.
func (h *HeldInput) Reset() {
	clear(h.held)
	h.pending.Clear()
}
