// Package storage provides SQLite-based persistence for recorded replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when no replay matches the requested ID.
var ErrNotFound = errors.New("replay not found")

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Replay is one recorded session. Config and Frames are opaque blobs owned by
// the replay package; list queries leave them empty.
type Replay struct {
	ID        string
	GameID    string
	Seed      int64
	Config    []byte // YAML
	Frames    []byte // Encoded input frames
	Score     int
	Outcome   string
	Ticks     int
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

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			config BLOB,
			frames BLOB,
			score INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_unix_ms INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_replays_game_id ON replays(game_id);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_unix_ms DESC);
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

// SaveReplay stores r under a fresh ID and returns it.
// r.ID and r.CreatedAt are ignored.
func (s *Store) SaveReplay(r Replay) (string, error) {
	id := uuid.NewString()
	created := s.now()

	_, err := s.db.Exec(
		`INSERT INTO replays
		 (id, game_id, seed, config, frames, score, outcome, ticks, created_unix_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, r.GameID, r.Seed, r.Config, r.Frames, r.Score, r.Outcome, r.Ticks, created.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save replay: %w", err)
	}
	return id, nil
}

// LoadReplay retrieves a full replay, blobs included.
// The ID may be a unique prefix of the stored one.
func (s *Store) LoadReplay(id string) (*Replay, error) {
	id, err := s.resolveID(id)
	if err != nil {
		return nil, err
	}

	var r Replay
	var created int64
	err = s.db.QueryRow(
		`SELECT id, game_id, seed, config, frames, score, outcome, ticks, created_unix_ms
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.GameID, &r.Seed, &r.Config, &r.Frames, &r.Score, &r.Outcome, &r.Ticks, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: %w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	r.CreatedAt = time.UnixMilli(created)
	return &r, nil
}

// resolveID expands a unique ID prefix to the full ID.
func (s *Store) resolveID(prefix string) (string, error) {
	if _, err := uuid.Parse(prefix); err == nil {
		return prefix, nil
	}

	rows, err := s.db.Query(`SELECT id FROM replays WHERE id LIKE ? || '%' LIMIT 2`, prefix)
	if err != nil {
		return "", fmt.Errorf("storage: cannot query replay: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("storage: %w: %s", ErrNotFound, prefix)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("storage: replay prefix %q is ambiguous", prefix)
	}
}

// ListReplays retrieves the most recent replays for the given game without
// their blobs. An empty gameID lists every game.
func (s *Store) ListReplays(gameID string, limit int) ([]Replay, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, score, outcome, ticks, created_unix_ms
		 FROM replays
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_unix_ms DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var replays []Replay
	for rows.Next() {
		var r Replay
		var created int64
		if err := rows.Scan(&r.ID, &r.GameID, &r.Seed, &r.Score, &r.Outcome, &r.Ticks, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = time.UnixMilli(created)
		replays = append(replays, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return replays, nil
}

// DeleteReplay removes a replay. Deleting a missing replay is not an error.
func (s *Store) DeleteReplay(id string) error {
	_, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	return nil
}
