package scroller

import (
	"math"

	"github.com/vovakirdan/sky-scroller/internal/core"
)

// Orientation is the direction the player sprite is facing.
type Orientation int

const (
	OrientationNeutral Orientation = iota
	OrientationUp
	OrientationDown
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientationNeutral:
		return "Neutral"
	case OrientationUp:
		return "Up"
	case OrientationDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Zone names one of the player's collision rectangles.
type Zone int

const (
	ZoneWhole      Zone = iota // Full sprite, used while neutral
	ZoneUpShort                // Top half, used while climbing
	ZoneUpNarrow               // Left half, used while climbing
	ZoneDownShort              // Bottom half, used while diving
	ZoneDownNarrow             // Left half, used while diving
	zoneCount
)

// Hitbox is a collision rectangle that is only active for one orientation.
type Hitbox struct {
	Zone        Zone
	Orientation Orientation
	Rect        core.Rect
}

// newHitboxes builds the five zones for a sprite of size w x h at (x, y).
func newHitboxes(x, y, w, h int) [zoneCount]Hitbox {
	halfW := halfRound(w)
	halfH := halfRound(h)
	return [zoneCount]Hitbox{
		{Zone: ZoneWhole, Orientation: OrientationNeutral, Rect: core.NewRect(x, y, w, h)},
		{Zone: ZoneUpShort, Orientation: OrientationUp, Rect: core.NewRect(x, y, w, halfH)},
		{Zone: ZoneUpNarrow, Orientation: OrientationUp, Rect: core.NewRect(x, y, halfW, h)},
		{Zone: ZoneDownShort, Orientation: OrientationDown, Rect: core.NewRect(x, y+halfH, w, halfH)},
		{Zone: ZoneDownNarrow, Orientation: OrientationDown, Rect: core.NewRect(x, y, halfW, h)},
	}
}

// halfRound halves a length, rounding ties to even.
func halfRound(n int) int {
	return int(math.RoundToEven(float64(n) / 2))
}
