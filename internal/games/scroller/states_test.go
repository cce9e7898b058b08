package scroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sky-scroller/internal/config"
)

func baseFrame(neutral float64) FrameContext {
	return FrameContext{FpsOverMin: 1, NeutralCount: neutral, HoverLimit: 20}
}

func TestSelectStatePriority(t *testing.T) {
	tests := []struct {
		name    string
		in      Intent
		neutral float64
		want    MoveState
	}{
		{"idle", Intent{}, 0, StateNeutral},
		{"up", Intent{Up: true}, 0, StateUp},
		{"down", Intent{Down: true}, 0, StateDown},
		{"up beats down", Intent{Up: true, Down: true}, 0, StateUp},
		{"up beats hover limit", Intent{Up: true}, 100, StateUp},
		{"hover limit forces down", Intent{}, 21, StateDown},
		{"at hover limit stays neutral", Intent{}, 20, StateNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectState(tt.in, baseFrame(tt.neutral)))
		})
	}
}

func TestHoverLimitScalesWithFrameRate(t *testing.T) {
	fc := FrameContext{FpsOverMin: 2, NeutralCount: 30, HoverLimit: 20}
	assert.False(t, fc.HoverLimitReached())

	fc.NeutralCount = 41
	assert.True(t, fc.HoverLimitReached())
}

func TestUpThenReleaseSnapsToNeutral(t *testing.T) {
	cfg := testConfig(func(c *config.ScrollerConfig) {
		c.Player.MinSpeed = 1
	})
	p := newTestPlayer(cfg, cfg.YBottomBarrier())
	require.Equal(t, OrientationNeutral, p.Orientation)
	require.Zero(t, p.Score.Score)

	res := Dispatch(p, Intent{Up: true}, baseFrame(5))
	assert.Equal(t, StateUp, res.State)
	assert.Equal(t, OrientationUp, res.Orientation)
	assert.Equal(t, OrientationUp, p.Orientation)
	assert.Less(t, p.Y, cfg.YBottomBarrier())
	assert.Negative(t, res.DeltaY)
	assert.Zero(t, res.NeutralCount)
	require.Equal(t, OrientationUp, p.SpeedCounter.Direction)

	p.LevelSpeedBoost = 1
	res = Dispatch(p, Intent{}, baseFrame(res.NeutralCount))
	assert.Equal(t, StateNeutral, res.State)
	assert.Equal(t, OrientationNeutral, p.Orientation)
	assert.Equal(t, cfg.Player.MinSpeed, p.CurrentSpeed)
	assert.Zero(t, p.LevelSpeedBoost, "release resets speed")
	assert.Zero(t, p.SpeedCounter.Count)
	assert.Zero(t, res.DeltaY)
	assert.Equal(t, 1.0, res.NeutralCount)
}

func TestUpAtCeilingStillAccelerates(t *testing.T) {
	p := newTestPlayer(testConfig(), 0)

	res := Dispatch(p, Intent{Up: true}, baseFrame(0))
	assert.Zero(t, res.DeltaY)
	assert.Equal(t, OrientationUp, p.Orientation)
	assert.Equal(t, 1, p.SpeedCounter.Count)
}

func TestUpUsesLevelSpeedBoost(t *testing.T) {
	cfg := testConfig()
	p := newTestPlayer(cfg, 300)
	p.LevelSpeedBoost = 1.75

	// Speed 2 at base rate leaves a full pixel of progress every frame.
	res := Dispatch(p, Intent{Up: true}, baseFrame(0))
	assert.Equal(t, -(cfg.Player.MinSpeed + 1), res.DeltaY)
}

func TestNeutralDriftsDownWhenIdle(t *testing.T) {
	cfg := testConfig()
	p := newTestPlayer(cfg, 100)
	p.SpeedCounter.Direction = OrientationDown

	res := Dispatch(p, Intent{}, baseFrame(0))
	assert.Equal(t, OrientationDown, p.Orientation)
	assert.Equal(t, OrientationDown, res.Sprite)
	assert.Zero(t, res.DeltaY, "first frame in a new direction does not move")

	res = Dispatch(p, Intent{}, baseFrame(res.NeutralCount))
	assert.Equal(t, cfg.Player.MinSpeed, res.DeltaY)
	assert.Equal(t, 2.0, res.NeutralCount)
}

func TestNeutralAtFloorStaysPut(t *testing.T) {
	cfg := testConfig()
	p := newTestPlayer(cfg, cfg.YBottomBarrier())
	p.SpeedCounter.Direction = OrientationDown

	res := Dispatch(p, Intent{}, baseFrame(3))
	assert.Zero(t, res.DeltaY)
	assert.Equal(t, OrientationNeutral, p.Orientation)
	assert.Equal(t, OrientationNeutral, res.Sprite)
	assert.Equal(t, 4.0, res.NeutralCount)
}

func TestDownResetsNeutralCountUnderHoverLimit(t *testing.T) {
	p := newTestPlayer(testConfig(), 100)

	res := Dispatch(p, Intent{Down: true}, baseFrame(12))
	assert.Equal(t, StateDown, res.State)
	assert.Zero(t, res.NeutralCount)
	assert.Equal(t, OrientationDown, p.SpeedCounter.Direction)
}

func TestForcedDescentKeepsNeutralCount(t *testing.T) {
	p := newTestPlayer(testConfig(), 100)

	res := Dispatch(p, Intent{}, baseFrame(25))
	assert.Equal(t, StateDown, res.State)
	assert.Equal(t, OrientationDown, p.Orientation)
	assert.Equal(t, 25.0, res.NeutralCount)

	// Still past the limit, so the next idle frame is forced down again.
	assert.Equal(t, StateDown, SelectState(Intent{}, baseFrame(res.NeutralCount)))
}

func TestDownAtFloorDoesNotMove(t *testing.T) {
	cfg := testConfig()
	p := newTestPlayer(cfg, cfg.YBottomBarrier())

	for i := 0; i < 5; i++ {
		res := Dispatch(p, Intent{Down: true}, baseFrame(0))
		assert.Zero(t, res.DeltaY)
		assert.Equal(t, OrientationNeutral, res.Sprite)
	}
	assert.Equal(t, cfg.YBottomBarrier(), p.Y)
	assert.Equal(t, 5, p.SpeedCounter.Count)
}

func TestHeldDownReachesFloorExactly(t *testing.T) {
	cfg := testConfig()
	p := newTestPlayer(cfg, 0)

	for i := 0; i < 1000; i++ {
		Dispatch(p, Intent{Down: true}, baseFrame(0))
		require.LessOrEqual(t, p.Y, cfg.YBottomBarrier())
	}
	assert.Equal(t, cfg.YBottomBarrier(), p.Y)
}
