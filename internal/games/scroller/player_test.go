package scroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncreaseYClampsAtBottomBarrier(t *testing.T) {
	cfg := testConfig()
	bottom := cfg.YBottomBarrier()

	tests := []struct {
		name  string
		start int
		val   int
	}{
		{"one past", bottom - 10, 11},
		{"far past", bottom - 10, 1000},
		{"from top", 0, bottom + 1},
		{"already at floor", bottom, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(cfg, tt.start)
			p.IncreaseY(tt.val, true)
			assert.Equal(t, bottom, p.Y)
		})
	}
}

func TestDecreaseYClampsAtCeiling(t *testing.T) {
	cfg := testConfig()

	for _, start := range []int{0, 1, 10, 300} {
		p := newTestPlayer(cfg, start)
		p.DecreaseY(start+7, true)
		assert.Equal(t, 0, p.Y, "start=%d", start)
	}
}

func TestMovementIgnoresBarriersWhenAsked(t *testing.T) {
	cfg := testConfig()
	bottom := cfg.YBottomBarrier()

	p := newTestPlayer(cfg, bottom)
	p.IncreaseY(30, false)
	assert.Equal(t, bottom+30, p.Y)

	p = newTestPlayer(cfg, 5)
	p.DecreaseY(20, false)
	assert.Equal(t, -15, p.Y)
}

func TestHitboxesFollowBody(t *testing.T) {
	cfg := testConfig()
	origin := 300
	p := newTestPlayer(cfg, origin)
	initial := p.Hitboxes

	moves := []func(){
		func() { p.IncreaseY(7, true) },
		func() { p.DecreaseY(100, true) },
		func() { p.DecreaseY(1000, true) },
		func() { p.IncreaseY(10000, true) },
		func() { p.IncreaseY(40, false) },
		func() { p.DecreaseY(3, false) },
		func() { p.SetY(123) },
	}

	for i, move := range moves {
		move()
		offset := p.Y - origin
		for z, hb := range p.Hitboxes {
			require.Equal(t, initial[z].Rect.Y+offset, hb.Rect.Y, "move %d zone %d", i, z)
			require.Equal(t, initial[z].Rect.X, hb.Rect.X, "move %d zone %d", i, z)
		}
	}
}

func TestHitboxZones(t *testing.T) {
	cfg := testConfig()
	p := newTestPlayer(cfg, 100)

	whole := p.Hitboxes[ZoneWhole]
	assert.Equal(t, OrientationNeutral, whole.Orientation)
	assert.Equal(t, p.Rect(), whole.Rect)

	upShort := p.Hitboxes[ZoneUpShort]
	assert.Equal(t, OrientationUp, upShort.Orientation)
	assert.Equal(t, 100, upShort.Rect.Y)
	assert.Equal(t, 25, upShort.Rect.H)

	upNarrow := p.Hitboxes[ZoneUpNarrow]
	assert.Equal(t, OrientationUp, upNarrow.Orientation)
	assert.Equal(t, 25, upNarrow.Rect.W)
	assert.Equal(t, 50, upNarrow.Rect.H)

	downShort := p.Hitboxes[ZoneDownShort]
	assert.Equal(t, OrientationDown, downShort.Orientation)
	assert.Equal(t, 125, downShort.Rect.Y)
	assert.Equal(t, p.Rect().Bottom(), downShort.Rect.Bottom())

	downNarrow := p.Hitboxes[ZoneDownNarrow]
	assert.Equal(t, OrientationDown, downNarrow.Orientation)
	assert.Equal(t, 25, downNarrow.Rect.W)
}

func TestCanMoveDirectionChangeCostsFrame(t *testing.T) {
	cfg := testConfig()

	for _, m := range []float64{0.1, 0.5, 1, 3, 1000} {
		pairs := [][2]Orientation{
			{OrientationUp, OrientationDown},
			{OrientationDown, OrientationUp},
			{OrientationNeutral, OrientationDown},
		}
		for _, pair := range pairs {
			p := newTestPlayer(cfg, 300)
			p.CanMove(m, pair[0])
			assert.False(t, p.CanMove(m, pair[1]), "m=%v %v->%v", m, pair[0], pair[1])
		}
	}
}

func TestCanMoveAccumulatesFractions(t *testing.T) {
	p := newTestPlayer(testConfig(), 300)

	assert.False(t, p.CanMove(0.5, OrientationUp))
	assert.True(t, p.CanMove(0.5, OrientationUp))
	assert.InDelta(t, 0, p.ProgressToMove, 1e-9)
	assert.False(t, p.CanMove(0.5, OrientationUp))
	assert.True(t, p.CanMove(0.5, OrientationUp))
}

func TestCanMoveRestartsAccumulatorOnDirectionChange(t *testing.T) {
	p := newTestPlayer(testConfig(), 300)

	assert.False(t, p.CanMove(0.75, OrientationDown))
	assert.InDelta(t, 0.75, p.ProgressToMove, 1e-9)
	assert.True(t, p.CanMove(0.75, OrientationDown))
	assert.InDelta(t, 0.5, p.ProgressToMove, 1e-9)
}

func TestIncreaseSpeedCounterNeverExceedsMax(t *testing.T) {
	cfg := testConfig()

	for _, fps := range []float64{1, 1.5, 2, 2.5} {
		p := newTestPlayer(cfg, 300)
		for i := 0; i < 10000; i++ {
			p.IncreaseSpeedCounter(OrientationUp, fps)
			require.LessOrEqual(t, p.CurrentSpeed, cfg.Player.MaxSpeed)
		}
		assert.Equal(t, cfg.Player.MaxSpeed, p.CurrentSpeed, "fps=%v", fps)
	}
}

func TestIncreaseSpeedCounterSteps(t *testing.T) {
	tests := []struct {
		name       string
		fpsOverMin float64
		framesToUp int
	}{
		{"base rate", 1, 10},
		{"double rate", 2, 20},
		{"fractional rate floors", 1.9, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			p := newTestPlayer(cfg, 300)

			for i := 0; i < tt.framesToUp-1; i++ {
				p.IncreaseSpeedCounter(OrientationUp, tt.fpsOverMin)
			}
			assert.Equal(t, cfg.Player.MinSpeed, p.CurrentSpeed)

			p.IncreaseSpeedCounter(OrientationUp, tt.fpsOverMin)
			assert.Equal(t, cfg.Player.MinSpeed+1, p.CurrentSpeed)
		})
	}
}

func TestIncreaseSpeedCounterDirectionChangeResets(t *testing.T) {
	cfg := testConfig()
	p := newTestPlayer(cfg, 300)
	p.LevelSpeedBoost = 1.5

	for i := 0; i < 10; i++ {
		p.IncreaseSpeedCounter(OrientationUp, 1)
	}
	require.Equal(t, cfg.Player.MaxSpeed, p.CurrentSpeed)

	p.IncreaseSpeedCounter(OrientationDown, 1)
	assert.Equal(t, cfg.Player.MinSpeed, p.CurrentSpeed)
	assert.Equal(t, SpeedCounter{Direction: OrientationDown, Count: 1}, p.SpeedCounter)
	assert.Zero(t, p.LevelSpeedBoost)
}

func TestResetSpeed(t *testing.T) {
	cfg := testConfig()
	p := newTestPlayer(cfg, 300)
	p.CurrentSpeed = cfg.Player.MaxSpeed
	p.LevelSpeedBoost = 2
	p.ProgressToMove = 0.7
	p.SpeedCounter = SpeedCounter{Direction: OrientationDown, Count: 14}

	p.ResetSpeed()

	assert.Equal(t, cfg.Player.MinSpeed, p.CurrentSpeed)
	assert.Zero(t, p.LevelSpeedBoost)
	assert.Zero(t, p.ProgressToMove)
	assert.Equal(t, SpeedCounter{Direction: OrientationDown}, p.SpeedCounter)
}

func TestPrepareNewGame(t *testing.T) {
	cfg := testConfig()
	p := newTestPlayer(cfg, cfg.YBottomBarrier())
	p.Score.Score = 321
	p.Score.Level = 4
	p.Score.LevelTicks.Count = 55
	p.Difficulty.ObstacleFrequency = 3
	p.Difficulty.ObstacleSpeed = 2.5
	p.Difficulty.Clock.Raise(20)
	p.Orientation = OrientationDown
	p.IncreaseY(200, false)

	p.PrepareNewGame(200)

	assert.Equal(t, 200, p.Y)
	assert.Equal(t, 200, p.Hitboxes[ZoneWhole].Rect.Y)
	assert.Equal(t, OrientationNeutral, p.Orientation)
	assert.Zero(t, p.Score.Score)
	assert.Equal(t, 1, p.Score.Level)
	assert.Zero(t, p.Score.LevelTicks.Count)
	assert.Equal(t, cfg.Obstacles.Frequency, p.Difficulty.ObstacleFrequency)
	assert.Zero(t, p.Difficulty.ObstacleSpeed)
	assert.Equal(t, cfg.FrameRate.Min, p.Difficulty.Clock.Current())
}
