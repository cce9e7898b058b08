package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 3)

	if s.Width() != 12 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 12x3", s.Width(), s.Height())
	}
	for y := 0; y < 3; y++ {
		if row := s.Row(y); row != strings.Repeat(" ", 12) {
			t.Errorf("row %d = %q, want blank", y, row)
		}
	}
}

func TestScreenClipsOutOfBounds(t *testing.T) {
	s := NewScreen(5, 2)

	s.SetColored(-1, 0, 'x', ColorRed)
	s.SetColored(5, 1, 'x', ColorRed)
	s.DrawTextColored(3, 0, "Score", ColorWhite)

	if got := s.Row(0); got != "   Sc" {
		t.Errorf("row 0 = %q, want %q", got, "   Sc")
	}
	if cell := s.GetCell(9, 9); cell != blankCell {
		t.Errorf("GetCell outside the screen = %+v, want blank", cell)
	}
	if got := s.Row(7); got != "     " {
		t.Errorf("Row outside the screen = %q, want blank", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 1)
	s.DrawTextCentered(0, "Paused", ColorYellow)

	if got := s.Row(0); got != "       Paused       " {
		t.Errorf("centered row = %q", got)
	}
	if c := s.GetCell(7, 0).Color; c != ColorYellow {
		t.Errorf("text color = %v, want %v", c, ColorYellow)
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 2, 2), '▓', ColorGray)
	s.DrawBox(NewRect(3, 0, 3, 3), ColorWhite)

	want := []string{
		"   ┌─┐",
		" ▓▓│ │",
		" ▓▓└─┘",
		"      ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
	if c := s.GetCell(1, 1).Color; c != ColorGray {
		t.Errorf("fill color = %v, want %v", c, ColorGray)
	}
}

func TestScreenTintSkipsBlanks(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetColored(0, 0, '@', ColorRed)

	s.Tint(ColorGray)

	if c := s.GetCell(0, 0).Color; c != ColorGray {
		t.Errorf("tinted cell color = %v, want %v", c, ColorGray)
	}
	if c := s.GetCell(1, 0).Color; c != ColorDefault {
		t.Errorf("blank cell color = %v, want default", c)
	}
}

func TestScreenClearAndString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColored(0, 0, "abc", ColorDefault)
	s.DrawTextColored(0, 1, "de", ColorDefault)

	if got := s.String(); got != "abc\nde " {
		t.Errorf("String() = %q", got)
	}

	s.Clear()
	if got := s.String(); got != "   \n   " {
		t.Errorf("String() after Clear = %q", got)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColored(0, 0, "abcd", ColorGreen)

	s.Resize(2, 3)

	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "ab" {
		t.Errorf("row 0 = %q, want %q", got, "ab")
	}
	if got := s.Row(2); got != "  " {
		t.Errorf("new row = %q, want blank", got)
	}
	if c := s.GetCell(1, 0).Color; c != ColorGreen {
		t.Errorf("kept color = %v, want %v", c, ColorGreen)
	}
}
