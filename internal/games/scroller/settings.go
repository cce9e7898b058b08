package scroller

import "github.com/vovakirdan/sky-scroller/internal/config"

// DifficultySettings are the per-attempt knobs mutated by progression.
// The base values they reset to come from the loaded configuration.
type DifficultySettings struct {
	ObstacleFrequency int     // Normalized ticks between spawns
	ObstacleSpeed     float64 // Shared horizontal speed added to every obstacle
	Clock             FrameClock
	DeathFallSpeed    int

	base config.ScrollerConfig
}

// NewDifficultySettings creates settings at their base values.
func NewDifficultySettings(cfg config.ScrollerConfig) *DifficultySettings {
	d := &DifficultySettings{base: cfg}
	d.Reset()
	return d
}

// Reset restores every knob to its base value.
func (d *DifficultySettings) Reset() {
	d.ObstacleFrequency = d.base.Obstacles.Frequency
	d.ObstacleSpeed = 0
	d.Clock = NewFrameClock(d.base.FrameRate.Min, d.base.FrameRate.Max)
	d.DeathFallSpeed = d.base.Death.FallSpeed
}

// FpsOverMin is the current frame rate relative to the minimum.
func (d *DifficultySettings) FpsOverMin() float64 {
	return d.Clock.FpsOverMin()
}
