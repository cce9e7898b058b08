package scroller

import (
	"math/rand"

	"github.com/vovakirdan/sky-scroller/internal/config"
	"github.com/vovakirdan/sky-scroller/internal/core"
)

// Obstacle is a single hazard scrolling from right to left.
type Obstacle struct {
	X, Y          int
	Width, Height int
	SpeedOffset   int // Added to the shared obstacle speed
	Variant       int // Index into the configured variants
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// ObstacleField handles spawning, movement, and removal of obstacles.
type ObstacleField struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.ObstacleConfig
	viewport  config.Viewport
}

// NewObstacleField creates an empty field with the given RNG seed.
func NewObstacleField(cfg config.ScrollerConfig, seed int64) *ObstacleField {
	f := &ObstacleField{
		obstacles: make([]Obstacle, 0, 16),
		cfg:       cfg.Obstacles,
		viewport:  cfg.Viewport,
	}
	f.Reset(seed)
	return f
}

// Reset clears all obstacles and reseeds the RNG.
func (f *ObstacleField) Reset(seed int64) {
	f.obstacles = f.obstacles[:0]
	f.rng = rand.New(rand.NewSource(seed))
}

// Spawn adds an obstacle just beyond the right edge of the viewport.
// The vertical position is clamped so the obstacle is fully on screen.
func (f *ObstacleField) Spawn() Obstacle {
	variant := f.rng.Intn(len(f.cfg.Variants))
	v := f.cfg.Variants[variant]

	x := f.viewport.Width
	if f.cfg.SpawnMargin > 0 {
		x += f.rng.Intn(f.cfg.SpawnMargin)
	}
	y := min(f.rng.Intn(f.viewport.Height), f.viewport.Height-v.Height)

	offset := f.cfg.MinSpeedOffset
	if spread := f.cfg.MaxSpeedOffset - f.cfg.MinSpeedOffset; spread > 0 {
		offset += f.rng.Intn(spread + 1)
	}

	o := Obstacle{
		X:           x + v.Width,
		Y:           y,
		Width:       v.Width,
		Height:      v.Height,
		SpeedOffset: offset,
		Variant:     variant,
	}
	f.obstacles = append(f.obstacles, o)
	return o
}

// Advance moves every obstacle left by obstacleSpeed + level + its own
// offset and drops the ones that left the viewport in the same pass.
// Returns the number of obstacles removed.
func (f *ObstacleField) Advance(obstacleSpeed float64, level int) int {
	alive := f.obstacles[:0]
	for _, o := range f.obstacles {
		o.X -= int(obstacleSpeed + float64(level+o.SpeedOffset))
		if o.X < -o.Width {
			continue
		}
		alive = append(alive, o)
	}
	removed := len(f.obstacles) - len(alive)
	f.obstacles = alive
	return removed
}

// Obstacles returns the live obstacles.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}
