package core

import "testing"

func TestRectIntersects(t *testing.T) {
	player := NewRect(0, 300, 50, 50)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(40, 320, 40, 50), true},
		{"contained", NewRect(10, 310, 5, 5), true},
		{"touching right edge", NewRect(50, 300, 40, 50), false},
		{"touching bottom edge", NewRect(0, 350, 40, 50), false},
		{"above", NewRect(0, 200, 50, 50), false},
		{"one pixel overlap", NewRect(49, 349, 10, 10), true},
		{"empty rect", NewRect(10, 310, 0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Intersects(tc.other); got != tc.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tc.other, got, tc.want)
			}
			if got := tc.other.Intersects(player); got != tc.want {
				t.Errorf("Intersects is not symmetric for %+v", tc.other)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(760, 575, 40, 25)
	if r.Right() != 800 || r.Bottom() != 600 {
		t.Errorf("edges = (%d, %d), want (800, 600)", r.Right(), r.Bottom())
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(0, 300, 50, 50).Translate(0, -7)

	if r != NewRect(0, 293, 50, 50) {
		t.Errorf("Translate(0, -7) = %+v", r)
	}
}

func TestRectScale(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		sx, sy float64
		want   Rect
	}{
		{"world to terminal", NewRect(400, 300, 64, 48), 0.1, 0.04, NewRect(40, 12, 6, 1)},
		{"tiny rect keeps one cell", NewRect(10, 10, 2, 2), 0.1, 0.04, NewRect(1, 0, 1, 1)},
		{"identity", NewRect(3, 4, 5, 6), 1, 1, NewRect(3, 4, 5, 6)},
		{"empty stays empty", NewRect(100, 100, 0, 0), 0.1, 0.1, NewRect(10, 10, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Scale(tc.sx, tc.sy); got != tc.want {
				t.Errorf("Scale() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestClampAndMax(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{-20, 0, 550, 0},
		{600, 0, 550, 550},
		{275, 0, 550, 275},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}

	if Max(1, -3) != 1 || Max(-3, 1) != 1 {
		t.Error("Max should return the larger value")
	}
}
