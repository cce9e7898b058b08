package scroller

import "github.com/vovakirdan/sky-scroller/internal/config"

// DeathPhase is the stage of the death animation.
type DeathPhase int

const (
	DeathRaise DeathPhase = iota
	DeathFall
	DeathDone
)

// DeathAnimation pops the player up briefly, then drops it off the bottom
// of the viewport with increasing speed. Movement ignores the barriers.
type DeathAnimation struct {
	phase     DeathPhase
	frame     int
	fallCount int
	cfg       config.DeathConfig
}

// NewDeathAnimation starts an animation in the raise phase.
func NewDeathAnimation(cfg config.DeathConfig) *DeathAnimation {
	return &DeathAnimation{cfg: cfg}
}

// Phase returns the current phase.
func (a *DeathAnimation) Phase() DeathPhase {
	return a.phase
}

// Done reports whether the player has left the screen.
func (a *DeathAnimation) Done() bool {
	return a.phase == DeathDone
}

// Sprite is the artwork to draw for the current phase.
func (a *DeathAnimation) Sprite() Orientation {
	if a.phase == DeathRaise {
		return OrientationNeutral
	}
	return OrientationDown
}

// Step advances the animation by one frame.
func (a *DeathAnimation) Step(p *Player) {
	switch a.phase {
	case DeathRaise:
		p.DecreaseY(a.cfg.RaiseSpeed, false)
		a.frame++
		if a.frame >= a.cfg.RaiseFrames {
			a.phase = DeathFall
		}
	case DeathFall:
		p.IncreaseY(p.Difficulty.DeathFallSpeed, false)
		a.fallCount++
		if a.fallCount%a.cfg.FallAccelerationEvery == 0 {
			p.Difficulty.DeathFallSpeed++
			a.fallCount = 0
		}
		if p.Y > p.YBottomBarrier()+p.Height {
			a.phase = DeathDone
		}
	}
}
