package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-scroller/internal/core"
)

func TestHeldInputHoldsMovementKeys(t *testing.T) {
	h := NewHeldInput(300*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionUp, t0)

	if !h.Frame(t0.Add(10 * time.Millisecond)).Has(core.ActionUp) {
		t.Error("Up should be held right after the press")
	}
	if !h.Frame(t0.Add(250 * time.Millisecond)).Has(core.ActionUp) {
		t.Error("Up should be held within the repeat delay")
	}
	if h.Frame(t0.Add(350 * time.Millisecond)).Has(core.ActionUp) {
		t.Error("Up should be released after the repeat delay")
	}
}

func TestHeldInputBridgesRepeatDelay(t *testing.T) {
	// A held key: one press, a pause before auto-repeat, then fast repeats.
	h := NewHeldInput(0, 0)
	t0 := time.Unix(0, 0)
	h.Press(core.ActionUp, t0)

	for ms := 0; ms <= 500; ms += 16 {
		if !h.Frame(t0.Add(time.Duration(ms) * time.Millisecond)).Has(core.ActionUp) {
			t.Fatalf("Up released at %dms before auto-repeat started", ms)
		}
	}

	repeatStart := t0.Add(500 * time.Millisecond)
	for i := 0; i < 10; i++ {
		at := repeatStart.Add(time.Duration(i*30) * time.Millisecond)
		h.Press(core.ActionUp, at)
		if !h.Frame(at.Add(10 * time.Millisecond)).Has(core.ActionUp) {
			t.Fatalf("Up released during auto-repeat at press %d", i)
		}
	}

	// Once repeating, letting go is noticed after the short window.
	last := repeatStart.Add(270 * time.Millisecond)
	if h.Frame(last.Add(DefaultHoldWindow + time.Millisecond)).Has(core.ActionUp) {
		t.Error("Up should be released one hold window after the last repeat")
	}
}

func TestHeldInputRepeatExtendsHold(t *testing.T) {
	h := NewHeldInput(100*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionDown, t0)
	h.Press(core.ActionDown, t0.Add(80*time.Millisecond))

	if !h.Frame(t0.Add(150 * time.Millisecond)).Has(core.ActionDown) {
		t.Error("auto-repeat should keep Down held")
	}
}

func TestHeldInputOppositeDirectionReplaces(t *testing.T) {
	h := NewHeldInput(100*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionDown, t0.Add(5*time.Millisecond))

	frame := h.Frame(t0.Add(10 * time.Millisecond))
	if frame.Has(core.ActionUp) || !frame.Has(core.ActionDown) {
		t.Errorf("expected only Down held, got %v", frame.Actions)
	}
}

func TestHeldInputOneShotActions(t *testing.T) {
	h := NewHeldInput(0, 0)
	t0 := time.Unix(0, 0)

	for _, a := range []core.Action{core.ActionPause, core.ActionConfirm, core.ActionRestart} {
		h.Press(a, t0)
		if !h.Frame(t0).Has(a) {
			t.Errorf("%v should fire on the next frame", a)
		}
		if h.Frame(t0).Has(a) {
			t.Errorf("%v should fire only once", a)
		}
	}
}

func TestHeldInputReset(t *testing.T) {
	h := NewHeldInput(0, 0)
	t0 := time.Unix(0, 0)
	h.Press(core.ActionUp, t0)
	h.Press(core.ActionPause, t0)

	h.Reset()

	if len(h.Frame(t0).Actions) != 0 {
		t.Error("Reset should drop every press")
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, core.ActionDown, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}
