package scroller

// MoveState is the per-frame movement state selected from input.
type MoveState int

const (
	StateNeutral MoveState = iota
	StateUp
	StateDown
)

func (s MoveState) String() string {
	switch s {
	case StateUp:
		return "up"
	case StateDown:
		return "down"
	default:
		return "neutral"
	}
}

// Intent is the movement input held this frame.
type Intent struct {
	Up   bool
	Down bool
}

// FrameContext carries the loop values a state handler reads.
type FrameContext struct {
	FpsOverMin   float64
	NeutralCount float64 // Normalized frames spent without input
	HoverLimit   float64
}

// HoverLimitReached reports whether the player has idled long enough to be
// forced downward. The limit stretches with the frame rate.
func (fc FrameContext) HoverLimitReached() bool {
	return fc.NeutralCount > fc.HoverLimit*fc.FpsOverMin
}

// StateResult is what a handler produced for one frame.
type StateResult struct {
	State        MoveState
	Orientation  Orientation
	NeutralCount float64
	DeltaY       int
	Sprite       Orientation // Artwork to draw this frame
}

type stateHandler func(p *Player, fc FrameContext) StateResult

var stateHandlers = [...]stateHandler{
	StateNeutral: neutralState,
	StateUp:      upState,
	StateDown:    downState,
}

// SelectState picks the state by priority: Up, then Down (held or forced by
// the hover limit), then Neutral.
func SelectState(in Intent, fc FrameContext) MoveState {
	switch {
	case in.Up:
		return StateUp
	case in.Down || fc.HoverLimitReached():
		return StateDown
	default:
		return StateNeutral
	}
}

// Dispatch selects the state for this frame and runs its handler.
func Dispatch(p *Player, in Intent, fc FrameContext) StateResult {
	state := SelectState(in, fc)
	y := p.Y
	res := stateHandlers[state](p, fc)
	res.State = state
	res.Orientation = p.Orientation
	res.DeltaY = p.Y - y
	return res
}

func upState(p *Player, fc FrameContext) StateResult {
	p.Orientation = OrientationUp
	if !p.AtCeiling() && p.CanMove(float64(p.CurrentSpeed)/fc.FpsOverMin, OrientationUp) {
		p.DecreaseY(p.MoveAmount(), true)
	}
	p.IncreaseSpeedCounter(OrientationUp, fc.FpsOverMin)
	return StateResult{NeutralCount: 0, Sprite: OrientationUp}
}

func downState(p *Player, fc FrameContext) StateResult {
	p.Orientation = OrientationDown
	sprite := OrientationNeutral
	if !p.AtFloor() {
		if p.CanMove(float64(p.CurrentSpeed)/fc.FpsOverMin, OrientationDown) {
			p.IncreaseY(p.MoveAmount(), true)
		}
		sprite = OrientationDown
	}

	// Past the limit the count is kept so the descent stays forced.
	neutral := fc.NeutralCount
	if !fc.HoverLimitReached() {
		neutral = 0
	}
	p.IncreaseSpeedCounter(OrientationDown, fc.FpsOverMin)
	return StateResult{NeutralCount: neutral, Sprite: sprite}
}

func neutralState(p *Player, fc FrameContext) StateResult {
	sprite := OrientationNeutral
	switch {
	case p.SpeedCounter.Direction == OrientationUp:
		p.ResetSpeed()
		p.Orientation = OrientationNeutral
	case !p.AtFloor():
		if p.CanMove(float64(p.CurrentSpeed), OrientationDown) {
			p.IncreaseY(p.MoveAmount(), true)
		}
		p.Orientation = OrientationDown
		sprite = OrientationDown
	}
	return StateResult{NeutralCount: fc.NeutralCount + fc.FpsOverMin, Sprite: sprite}
}
