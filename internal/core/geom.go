// Package core provides fundamental types and utilities shared by the game
// simulation and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Translate returns the rectangle moved by (dx, dy). Size is unchanged.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count: the overlap must be non-zero on both axes.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Scale maps a rectangle from world units into another coordinate space.
// Non-empty rectangles keep at least one unit on each axis.
func (r Rect) Scale(sx, sy float64) Rect {
	x := int(float64(r.X) * sx)
	y := int(float64(r.Y) * sy)
	w := Max(1, int(float64(r.Right())*sx)-x)
	h := Max(1, int(float64(r.Bottom())*sy)-y)
	if r.W <= 0 {
		w = 0
	}
	if r.H <= 0 {
		h = 0
	}
	return NewRect(x, y, w, h)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
