// Package storage provides SQLite-based persistence for finished attempts.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for attempt history.
type Store struct {
	db *sql.DB
}

// Attempt is one finished run.
type Attempt struct {
	ID        int64
	GameID    string
	Score     int
	Level     int
	Frames    int // Frames survived before the collision
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			frames INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_game_id ON attempts(game_id);
		CREATE INDEX IF NOT EXISTS idx_attempts_top ON attempts(game_id, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveAttempt records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveAttempt(a Attempt) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO attempts (game_id, score, level, frames) VALUES (?, ?, ?, ?)",
		a.GameID, a.Score, a.Level, a.Frames,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopAttempts retrieves the best N attempts for the given game.
// Results are ordered by score descending, earlier attempts first on ties.
func (s *Store) TopAttempts(gameID string, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, game_id, score, level, frames, created_at
		 FROM attempts
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentAttempts retrieves the latest N attempts for the given game.
func (s *Store) RecentAttempts(gameID string, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(
		`SELECT id, game_id, score, level, frames, created_at
		 FROM attempts
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) query(q string, args ...any) ([]Attempt, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var entries []Attempt
	for rows.Next() {
		var a Attempt
		var createdAt any
		if err := rows.Scan(&a.ID, &a.GameID, &a.Score, &a.Level, &a.Frames, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		entries = append(entries, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both driver-decoded times and SQLite's text format.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest recorded score for the given game.
// Returns 0 if no attempts exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM attempts WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearAttempts deletes all attempts for the given game.
func (s *Store) ClearAttempts(gameID string) error {
	_, err := s.db.Exec("DELETE FROM attempts WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear attempts: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID      string
	Attempts    int
	HighScore   int
	AvgScore    float64
	BestLevel   int
	TotalFrames int64
	LastPlayed  time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(level), 0), COALESCE(SUM(frames), 0)
		 FROM attempts WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Attempts, &stats.HighScore, &stats.AvgScore, &stats.BestLevel, &stats.TotalFrames)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM attempts WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
