// Package highscore keeps the process-wide best score and persists it through
// a pluggable backend. The record is passed explicitly to whoever commits an
// attempt; there is no package-level state.
package highscore

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrSave marks a failure to persist a new best score. Load failures are
// never reported as errors: an unreadable record simply means "no best yet".
var ErrSave = errors.New("highscore: save failed")

// Backend loads and stores a single best score.
type Backend interface {
	Load() (float64, error)
	Save(score float64) error
}

// Tracker is the best-score record shared by all attempts of a process.
type Tracker struct {
	backend Backend
	best    float64
	logger  *log.Logger
}

// NewTracker creates a tracker and loads the persisted best score.
// A load failure is logged and treated as a best score of 0.
func NewTracker(backend Backend, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := &Tracker{backend: backend, logger: logger}

	if backend != nil {
		best, err := backend.Load()
		if err != nil {
			logger.Warn("no recorded high score", "error", err)
			best = 0
		}
		t.best = best
	}
	return t
}

// Best returns the best score recorded so far.
func (t *Tracker) Best() float64 {
	return t.best
}

// SetHighScore updates the in-memory best if score strictly exceeds it.
// Returns true if the best score changed.
func (t *Tracker) SetHighScore(score float64) bool {
	if score <= t.best {
		return false
	}
	t.best = score
	return true
}

// Commit records the score of a finished attempt. A new best is persisted;
// a save failure is logged and returned wrapped in ErrSave, but the
// in-memory best keeps the new value so the loss screen stays correct.
func (t *Tracker) Commit(score float64) (bool, error) {
	if !t.SetHighScore(score) {
		return false, nil
	}
	t.logger.Info("new high score", "score", int(score))

	if t.backend == nil {
		return true, nil
	}
	if err := t.backend.Save(score); err != nil {
		t.logger.Error("could not save high score", "score", int(score), "error", err)
		return true, fmt.Errorf("%w: %w", ErrSave, err)
	}
	return true, nil
}
