package scroller

// ScoreTracker holds the running score and level of one attempt together
// with the tick accumulators that drive difficulty progression.
// The best score across attempts lives in highscore.Tracker.
type ScoreTracker struct {
	Score float64
	Level int

	ObstacleTicks  Ticker
	LevelTicks     Ticker
	FrequencyTicks Ticker
}

// NewScoreTracker creates a tracker for a fresh attempt.
func NewScoreTracker() *ScoreTracker {
	s := &ScoreTracker{}
	s.Reset()
	return s
}

// IncreaseScore adds a frame-rate-normalized amount to the score.
func (s *ScoreTracker) IncreaseScore(adjustment float64) {
	s.Score += adjustment
}

// Reset zeroes score and accumulators and returns to level 1.
func (s *ScoreTracker) Reset() {
	s.Score = 0
	s.Level = 1
	s.ObstacleTicks.Reset()
	s.LevelTicks.Reset()
	s.FrequencyTicks.Reset()
}
