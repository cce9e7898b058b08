package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyScrollerPreset modifies the config based on a difficulty preset.
// Normal keeps the configured values. Only fixed touches progression.enabled.
func ApplyScrollerPreset(cfg *ScrollerConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Progression.Enabled = false
		return
	}

	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.Frequency = cfg.Obstacles.Frequency * 3 / 2
		cfg.Progression.FrequencyTick *= 1.5
	case DifficultyHard:
		cfg.Obstacles.Frequency = max(1, cfg.Obstacles.Frequency*5/8)
		cfg.Progression.FrequencyTick *= 0.6
		cfg.Player.HoverLimit /= 2
	}
}
