package config

import (
	_ "embed"
)

//go:embed defaults/skyscroller.yaml
var defaultScrollerYAML []byte

// DefaultScrollerConfig returns the built-in Sky Scroller configuration.
// It mirrors defaults/skyscroller.yaml and is used when the embed cannot be parsed.
func DefaultScrollerConfig() ScrollerConfig {
	return ScrollerConfig{
		Viewport: Viewport{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			X:                   0,
			Width:               50,
			Height:              50,
			MinSpeed:            2,
			MaxSpeed:            3,
			SpeedIncrementCount: 10,
			HoverLimit:          20,
			RandomRestart:       true,
		},
		FrameRate: FrameRateConfig{
			Min:  60,
			Max:  150,
			Tick: 2,
		},
		Obstacles: ObstacleConfig{
			Frequency:       40,
			FrequencyAdjust: 40,
			SpeedAdjust:     0.5,
			SpawnMargin:     50,
			MinSpeedOffset:  1,
			MaxSpeedOffset:  2,
			Variants: []ObstacleVariant{
				{Name: "balloon", Width: 40, Height: 50},
				{Name: "bird", Width: 50, Height: 25},
				{Name: "cloud", Width: 90, Height: 50},
			},
		},
		Progression: ProgressionConfig{
			Enabled:       true,
			LevelTick:     100,
			FrequencyTick: 800,
		},
		Death: DeathConfig{
			RaiseFrames:           19,
			RaiseSpeed:            2,
			FallSpeed:             2,
			FallAccelerationEvery: 50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultScrollerYAML
}
