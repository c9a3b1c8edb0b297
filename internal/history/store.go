// Copyright (c) 2025 Buildsync
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package history persists a local record of sync runs in SQLite. Each run
// stores the daemon version, the protocol strategy that was selected, how
// many project models came back and the outcome, so users can inspect past
// synchronizations with 'buildsync history'.
package history

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"buildsync/cli/internal/xdg"
)

const schema = `
CREATE TABLE IF NOT EXISTS sync_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at INTEGER NOT NULL,
	daemon_version TEXT NOT NULL,
	strategy TEXT NOT NULL,
	project_count INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	outcome TEXT NOT NULL
);
`

// Record is one sync run.
type Record struct {
	ID            int64
	StartedAt     time.Time
	DaemonVersion string
	Strategy      string
	ProjectCount  int
	Duration      time.Duration
	// Outcome is "ok" or a short failure description.
	Outcome string
}

// Store is a SQLite-backed sync history.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the history database location in the XDG state dir.
func DefaultPath() (string, error) {
	dir, err := xdg.StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// Open opens (and if needed initializes) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Append writes one sync run record.
func (s *Store) Append(r Record) error {
	_, err := s.db.Exec(
		`INSERT INTO sync_runs (started_at, daemon_version, strategy, project_count, duration_ms, outcome)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.StartedAt.Unix(), r.DaemonVersion, r.Strategy, r.ProjectCount, r.Duration.Milliseconds(), r.Outcome,
	)
	if err != nil {
		return fmt.Errorf("recording sync run: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, started_at, daemon_version, strategy, project_count, duration_ms, outcome
		 FROM sync_runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sync history: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var startedAt int64
		var durationMS int64
		if err := rows.Scan(&r.ID, &startedAt, &r.DaemonVersion, &r.Strategy, &r.ProjectCount, &durationMS, &r.Outcome); err != nil {
			return nil, fmt.Errorf("scanning sync history row: %w", err)
		}
		r.StartedAt = time.Unix(startedAt, 0)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sync history rows: %w", err)
	}
	return out, nil
}
