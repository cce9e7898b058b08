package highscore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath is the record location relative to the data directory.
const DefaultPath = "score/highscore.txt"

// record is the on-disk format: {"score": <number>}.
type record struct {
	Score *float64 `json:"score,omitempty"`
}

// FileBackend stores the best score as a small JSON object.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend for the given path. A leading ~ expands
// to the user's home directory.
func NewFileBackend(path string) *FileBackend {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &FileBackend{path: path}
}

// Path returns the resolved file path.
func (b *FileBackend) Path() string {
	return b.path
}

// Load reads the best score. A file without a score key yields 0.
func (b *FileBackend) Load() (float64, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", b.path, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("highscore: corrupt record %s: %w", b.path, err)
	}
	if rec.Score == nil {
		return 0, nil
	}
	return *rec.Score, nil
}

// Save writes the score, replacing the file atomically.
func (b *FileBackend) Save(score float64) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory: %w", err)
	}

	data, err := json.Marshal(record{Score: &score})
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(b.path), ".highscore-*")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: cannot write record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: cannot write record: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("highscore: cannot replace %s: %w", b.path, err)
	}
	return nil
}

// MemoryBackend keeps the best score in memory. Useful for tests and for
// runs where nothing should touch the disk.
type MemoryBackend struct {
	Score   float64
	LoadErr error
	SaveErr error
	Saves   int
}

// Load returns the stored score or LoadErr.
func (m *MemoryBackend) Load() (float64, error) {
	if m.LoadErr != nil {
		return 0, m.LoadErr
	}
	return m.Score, nil
}

// Save stores the score unless SaveErr is set.
func (m *MemoryBackend) Save(score float64) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Score = score
	m.Saves++
	return nil
}
