package scroller

import (
	"github.com/vovakirdan/sky-scroller/internal/config"
	"github.com/vovakirdan/sky-scroller/internal/core"
)

// SpeedCounter counts consecutive frames of input in one direction.
type SpeedCounter struct {
	Direction Orientation
	Count     int
}

// Player is the controllable sprite. It owns the score and difficulty
// settings of the current attempt.
type Player struct {
	X, Y          int
	Width, Height int

	Orientation     Orientation
	CurrentSpeed    int
	LevelSpeedBoost float64
	SpeedCounter    SpeedCounter

	// ProgressToMove accumulates fractional pixels for moveDirection.
	ProgressToMove float64
	moveDirection  Orientation

	Hitboxes [zoneCount]Hitbox

	Score      *ScoreTracker
	Difficulty *DifficultySettings

	cfg            config.PlayerConfig
	yBottomBarrier int
}

// NewPlayer creates a player at (x, y) with fresh score and settings.
func NewPlayer(cfg config.ScrollerConfig, x, y int) *Player {
	return &Player{
		X:              x,
		Y:              y,
		Width:          cfg.Player.Width,
		Height:         cfg.Player.Height,
		Orientation:    OrientationNeutral,
		CurrentSpeed:   cfg.Player.MinSpeed,
		SpeedCounter:   SpeedCounter{Direction: OrientationUp},
		moveDirection:  OrientationUp,
		Hitboxes:       newHitboxes(x, y, cfg.Player.Width, cfg.Player.Height),
		Score:          NewScoreTracker(),
		Difficulty:     NewDifficultySettings(cfg),
		cfg:            cfg.Player,
		yBottomBarrier: cfg.YBottomBarrier(),
	}
}

// YBottomBarrier is the lowest y the player can reach during play.
func (p *Player) YBottomBarrier() int {
	return p.yBottomBarrier
}

// Rect returns the sprite bounding box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// AtCeiling reports whether the player touches the top of the viewport.
func (p *Player) AtCeiling() bool {
	return p.Y <= 0
}

// AtFloor reports whether the player rests on the bottom barrier.
func (p *Player) AtFloor() bool {
	return p.Y >= p.yBottomBarrier
}

// MoveAmount is the pixel distance of one movement step.
func (p *Player) MoveAmount() int {
	return p.CurrentSpeed + int(p.LevelSpeedBoost)
}

// AdjustLevelSpeedBoost adds to the per-level speed boost.
func (p *Player) AdjustLevelSpeedBoost(adjustment float64) {
	p.LevelSpeedBoost += adjustment
}

// ResetSpeed drops back to minimum speed and clears accumulated progress.
// The counter keeps its direction.
func (p *Player) ResetSpeed() {
	p.SpeedCounter.Count = 0
	p.CurrentSpeed = p.cfg.MinSpeed
	p.LevelSpeedBoost = 0
	p.ProgressToMove = 0
}

// IncreaseSpeedCounter records one more frame of input in direction.
// A new direction resets speed and starts a fresh counter. Speed steps up
// once every SpeedIncrementCount frames, stretched by the frame-rate ratio
// so acceleration takes the same wall-clock time at any frame rate.
func (p *Player) IncreaseSpeedCounter(direction Orientation, fpsOverMin float64) {
	if p.SpeedCounter.Direction != direction {
		p.ResetSpeed()
		p.SpeedCounter = SpeedCounter{Direction: direction}
	}
	if p.CurrentSpeed >= p.cfg.MaxSpeed {
		return
	}

	p.SpeedCounter.Count++
	step := max(1, int(fpsOverMin)) * p.cfg.SpeedIncrementCount
	if p.SpeedCounter.Count%step == 0 {
		p.CurrentSpeed++
	}
}

// CanMove accumulates fractional movement and reports whether a whole
// pixel step is due. Changing direction restarts the accumulator at
// movement and costs the current frame.
func (p *Player) CanMove(movement float64, direction Orientation) bool {
	if direction != p.moveDirection {
		p.moveDirection = direction
		p.ProgressToMove = movement
		return false
	}
	p.ProgressToMove += movement
	if p.ProgressToMove < 1 {
		return false
	}
	p.ProgressToMove--
	return true
}

// IncreaseY moves the player down by val pixels. With respectBarriers the
// player stops exactly on the bottom barrier.
func (p *Player) IncreaseY(val int, respectBarriers bool) {
	adjust := val
	if respectBarriers && p.Y+val > p.yBottomBarrier {
		adjust = p.yBottomBarrier - p.Y
	}
	p.translateY(adjust)
}

// DecreaseY moves the player up by val pixels. With respectBarriers the
// player stops exactly at the top of the viewport.
func (p *Player) DecreaseY(val int, respectBarriers bool) {
	adjust := val
	if respectBarriers && p.Y-val < 0 {
		adjust = p.Y
	}
	p.translateY(-adjust)
}

// SetY places the player at y, moving every hitbox along with it.
func (p *Player) SetY(y int) {
	p.translateY(y - p.Y)
}

// translateY is the single place the position changes, so hitboxes never
// drift from the body.
func (p *Player) translateY(dy int) {
	p.Y += dy
	for i := range p.Hitboxes {
		p.Hitboxes[i].Rect = p.Hitboxes[i].Rect.Translate(0, dy)
	}
}

// PrepareNewGame soft-resets the player for another attempt at height y.
func (p *Player) PrepareNewGame(y int) {
	p.ResetSpeed()
	p.Score.Reset()
	p.Difficulty.Reset()
	p.Orientation = OrientationNeutral
	p.SpeedCounter = SpeedCounter{Direction: OrientationUp}
	p.moveDirection = OrientationUp
	p.SetY(y)
}
