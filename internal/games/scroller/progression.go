package scroller

import "github.com/vovakirdan/sky-scroller/internal/config"

// TickEvents reports what one progression pass changed.
type TickEvents struct {
	Spawned          bool
	LevelUp          bool
	FrameRateRaised  bool
	FrequencyChanged bool
}

// Progression applies the tick-driven difficulty rules once per frame.
type Progression struct {
	cfg config.ScrollerConfig
}

// NewProgression creates the rules for the given configuration.
func NewProgression(cfg config.ScrollerConfig) *Progression {
	return &Progression{cfg: cfg}
}

// Tick advances the accumulators by one normalized frame, then spawns,
// levels up and tightens obstacle frequency as their thresholds pass.
// With progression disabled only spawning happens.
func (pr *Progression) Tick(p *Player, field *ObstacleField) TickEvents {
	var ev TickEvents
	s := p.Score
	d := p.Difficulty

	s.ObstacleTicks.Advance(d.Clock)
	s.LevelTicks.Advance(d.Clock)
	s.FrequencyTicks.Advance(d.Clock)

	if s.ObstacleTicks.Drain(float64(d.ObstacleFrequency)) {
		field.Spawn()
		ev.Spawned = true
	}

	if !pr.cfg.Progression.Enabled {
		return ev
	}

	if s.LevelTicks.Drain(pr.cfg.Progression.LevelTick) {
		s.Level++
		ev.LevelUp = true
		pr.increaseObstacleSpeed(p, &ev)
	}

	if s.FrequencyTicks.Drain(pr.cfg.Progression.FrequencyTick) {
		pr.increaseObstacleFrequency(d)
		ev.FrequencyChanged = true
	}

	return ev
}

// increaseObstacleSpeed first speeds up the loop itself; once the frame
// rate is capped, obstacles and the player get faster instead.
func (pr *Progression) increaseObstacleSpeed(p *Player, ev *TickEvents) {
	d := p.Difficulty
	if d.Clock.Raise(pr.cfg.FrameRate.Tick) {
		ev.FrameRateRaised = true
		return
	}
	d.ObstacleSpeed += pr.cfg.Obstacles.SpeedAdjust
	p.AdjustLevelSpeedBoost(pr.cfg.Obstacles.SpeedAdjust / 2)
}

// increaseObstacleFrequency lowers the spawn threshold linearly, then by
// halving once it is at or below one linear step.
func (pr *Progression) increaseObstacleFrequency(d *DifficultySettings) {
	if d.ObstacleFrequency > pr.cfg.Obstacles.FrequencyAdjust {
		d.ObstacleFrequency -= pr.cfg.Obstacles.FrequencyAdjust
		return
	}
	d.ObstacleFrequency /= 2
}
