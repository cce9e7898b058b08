package scroller

// FrameClock owns the loop frame rate and is the only place frame-rate
// normalization is computed. Counters that must advance at the same
// wall-clock pace regardless of frame rate go through PerFrame.
type FrameClock struct {
	current int
	min     int
	max     int
}

// NewFrameClock creates a clock running at the minimum rate.
func NewFrameClock(min, max int) FrameClock {
	return FrameClock{current: min, min: min, max: max}
}

// Current returns the target frame rate.
func (c FrameClock) Current() int {
	return c.current
}

// AtCap reports whether the frame rate has reached its maximum.
func (c FrameClock) AtCap() bool {
	return c.current >= c.max
}

// PerFrame is the fraction of a minimum-rate frame that one frame at the
// current rate represents (min/current).
func (c FrameClock) PerFrame() float64 {
	return float64(c.min) / float64(c.current)
}

// FpsOverMin is the inverse of PerFrame (current/min).
func (c FrameClock) FpsOverMin() float64 {
	return float64(c.current) / float64(c.min)
}

// Raise increases the frame rate by tick, saturating at the maximum.
// Returns false if the clock was already capped.
func (c *FrameClock) Raise(tick int) bool {
	if c.AtCap() {
		return false
	}
	c.current = min(c.current+tick, c.max)
	return true
}

// Reset returns the clock to the minimum rate.
func (c *FrameClock) Reset() {
	c.current = c.min
}

// Ticker accumulates normalized frames and fires each time a threshold is
// passed. Draining subtracts the threshold, so overshoot carries over.
type Ticker struct {
	Count float64
}

// Advance adds one frame's worth of normalized time.
func (t *Ticker) Advance(c FrameClock) {
	t.Count += c.PerFrame()
}

// Drain fires if the count strictly exceeds threshold.
func (t *Ticker) Drain(threshold float64) bool {
	if t.Count <= threshold {
		return false
	}
	t.Count -= threshold
	return true
}

// Reset zeroes the count.
func (t *Ticker) Reset() {
	t.Count = 0
}
