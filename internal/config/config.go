// Package config provides YAML-based game configuration loading and
// difficulty presets for Sky Scroller.
package config

import (
	"errors"
	"fmt"
)

// ScrollerConfig contains all tunables for a Sky Scroller run.
// Distances are in world pixels; the renderer scales them to the terminal.
type ScrollerConfig struct {
	Viewport    Viewport          `yaml:"viewport"`
	Player      PlayerConfig      `yaml:"player"`
	FrameRate   FrameRateConfig   `yaml:"frame_rate"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Progression ProgressionConfig `yaml:"progression"`
	Death       DeathConfig       `yaml:"death"`
}

// Viewport is the size of the simulated play field.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player's sprite size and movement model.
type PlayerConfig struct {
	X                   int     `yaml:"x"`
	Width               int     `yaml:"width"`
	Height              int     `yaml:"height"`
	MinSpeed            int     `yaml:"min_speed"`
	MaxSpeed            int     `yaml:"max_speed"`
	SpeedIncrementCount int     `yaml:"speed_increment_count"` // Frames of held input per speed step
	HoverLimit          float64 `yaml:"hover_limit"`           // Idle frames before a forced descent
	RandomRestart       bool    `yaml:"random_restart"`        // Start retries in the middle half of the screen
}

// FrameRateConfig bounds the loop frame rate. Min is also the normalization base.
type FrameRateConfig struct {
	Min  int `yaml:"min"`
	Max  int `yaml:"max"`
	Tick int `yaml:"tick"` // Added per level until Max is reached
}

// ObstacleConfig defines spawning and speed of obstacles.
type ObstacleConfig struct {
	Frequency       int               `yaml:"frequency"`        // Initial ticks between spawns
	FrequencyAdjust int               `yaml:"frequency_adjust"` // Linear decrement per frequency tick
	SpeedAdjust     float64           `yaml:"speed_adjust"`     // Speed added per level once the frame rate is capped
	SpawnMargin     int               `yaml:"spawn_margin"`     // Random extra distance beyond the right edge
	MinSpeedOffset  int               `yaml:"min_speed_offset"`
	MaxSpeedOffset  int               `yaml:"max_speed_offset"`
	Variants        []ObstacleVariant `yaml:"variants"`
}

// ObstacleVariant is one visual kind of obstacle.
type ObstacleVariant struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// ProgressionConfig defines the tick thresholds that ramp difficulty.
type ProgressionConfig struct {
	Enabled       bool    `yaml:"enabled"`
	LevelTick     float64 `yaml:"level_tick"`
	FrequencyTick float64 `yaml:"frequency_tick"`
}

// DeathConfig tunes the two-phase death animation.
type DeathConfig struct {
	RaiseFrames           int `yaml:"raise_frames"`
	RaiseSpeed            int `yaml:"raise_speed"`
	FallSpeed             int `yaml:"fall_speed"`
	FallAccelerationEvery int `yaml:"fall_acceleration_every"`
}

// YBottomBarrier is the lowest y the player's top edge may reach.
func (c ScrollerConfig) YBottomBarrier() int {
	return c.Viewport.Height - c.Player.Height
}

// Validate reports the first setting that would break the simulation.
func (c ScrollerConfig) Validate() error {
	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("config: viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Height > c.Viewport.Height:
		return fmt.Errorf("config: player size %dx%d does not fit the viewport", c.Player.Width, c.Player.Height)
	case c.Player.MinSpeed < 1 || c.Player.MaxSpeed < c.Player.MinSpeed:
		return fmt.Errorf("config: player speed range [%d, %d] is invalid", c.Player.MinSpeed, c.Player.MaxSpeed)
	case c.Player.SpeedIncrementCount < 1:
		return errors.New("config: player.speed_increment_count must be at least 1")
	case c.FrameRate.Min < 1 || c.FrameRate.Max < c.FrameRate.Min:
		return fmt.Errorf("config: frame rate range [%d, %d] is invalid", c.FrameRate.Min, c.FrameRate.Max)
	case c.FrameRate.Tick < 1:
		return errors.New("config: frame_rate.tick must be at least 1")
	case c.Obstacles.Frequency < 1:
		return errors.New("config: obstacles.frequency must be at least 1")
	case c.Obstacles.FrequencyAdjust < 0 || c.Obstacles.SpeedAdjust < 0:
		return errors.New("config: obstacle frequency and speed adjustments must not be negative")
	case c.Obstacles.MinSpeedOffset < 0:
		// Level 1 plus the offset must move every obstacle at least one pixel.
		return fmt.Errorf("config: obstacles.min_speed_offset must not be negative, got %d", c.Obstacles.MinSpeedOffset)
	case c.Obstacles.MinSpeedOffset > c.Obstacles.MaxSpeedOffset:
		return errors.New("config: obstacles.min_speed_offset exceeds max_speed_offset")
	case len(c.Obstacles.Variants) == 0:
		return errors.New("config: at least one obstacle variant is required")
	case c.Progression.LevelTick <= 0 || c.Progression.FrequencyTick <= 0:
		return errors.New("config: progression ticks must be positive")
	case c.Death.RaiseFrames < 0 || c.Death.RaiseSpeed < 0 || c.Death.FallSpeed < 0:
		return errors.New("config: death frames and speeds must not be negative")
	case c.Death.FallAccelerationEvery < 1:
		return errors.New("config: death.fall_acceleration_every must be at least 1")
	}
	for _, v := range c.Obstacles.Variants {
		if v.Width <= 0 || v.Height <= 0 || v.Height > c.Viewport.Height {
			return fmt.Errorf("config: obstacle variant %q has invalid size %dx%d", v.Name, v.Width, v.Height)
		}
	}
	return nil
}
