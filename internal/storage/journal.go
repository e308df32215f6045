// Package storage provides the SQLite activity journal of the pet.
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

// DefaultPath is where the journal lives unless --db says otherwise.
const DefaultPath = "~/.ratpet/journal.db"

// ErrEmptyPath is returned by Open for an empty database path.
// sqlite would otherwise open a private temporary database.
var ErrEmptyPath = errors.New("storage: empty journal path")

// Journal manages the SQLite database holding sessions and pet events.
type Journal struct {
	db  *sql.DB
	now func() time.Time
}

// Session is one run of the pet, from window open to close.
type Session struct {
	ID        int64
	Skin      string
	StartedAt time.Time
	EndedAt   time.Time // zero while running or after a crash
	Distance  float64   // pixels travelled
	Events    int
}

// Duration returns how long the session ran; zero if it never ended.
func (s Session) Duration() time.Duration {
	if s.EndedAt.IsZero() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// Totals aggregates every session in the journal.
type Totals struct {
	Sessions int
	Distance float64
	Duration time.Duration
	ByKind   map[string]int // event kind -> count
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Journal, error) {
	if dbPath == "" {
		return nil, ErrEmptyPath
	}
	if dbPath[0] == '~' {
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
	// the recorder goroutine and the game loop share one connection
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	j := &Journal{db: db, now: time.Now}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return j, nil
}

// migrate creates the database schema if it doesn't exist.
func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			skin TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER,
			distance REAL NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id INTEGER NOT NULL REFERENCES sessions(id),
			kind TEXT NOT NULL,
			detail TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id);
		CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// StartSession opens a new session and returns its ID.
func (j *Journal) StartSession(skin string) (int64, error) {
	result, err := j.db.Exec(
		"INSERT INTO sessions (skin, started_at) VALUES (?, ?)",
		skin, j.now().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot start session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecordEvent appends one event to a session.
func (j *Journal) RecordEvent(sessionID int64, kind, detail string) error {
	_, err := j.db.Exec(
		"INSERT INTO events (session_id, kind, detail, created_at) VALUES (?, ?, ?, ?)",
		sessionID, kind, detail, j.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record event %s: %w", kind, err)
	}
	return nil
}

// EndSession stamps the end time and the distance travelled.
func (j *Journal) EndSession(sessionID int64, distance float64) error {
	result, err := j.db.Exec(
		"UPDATE sessions SET ended_at = ?, distance = ? WHERE id = ?",
		j.now().UnixMilli(), distance, sessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot end session: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("storage: session %d not found", sessionID)
	}
	return nil
}

// RecentSessions returns the newest sessions first.
func (j *Journal) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := j.db.Query(
		`SELECT s.id, s.skin, s.started_at, s.ended_at, s.distance,
		        (SELECT COUNT(*) FROM events e WHERE e.session_id = s.id)
		 FROM sessions s
		 ORDER BY s.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var started int64
		var ended sql.NullInt64
		if err := rows.Scan(&s.ID, &s.Skin, &started, &ended, &s.Distance, &s.Events); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		s.StartedAt = time.UnixMilli(started)
		if ended.Valid {
			s.EndedAt = time.UnixMilli(ended.Int64)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}

// Totals sums up all sessions and counts events per kind.
func (j *Journal) Totals() (Totals, error) {
	t := Totals{ByKind: make(map[string]int)}

	var distance sql.NullFloat64
	var durationMs sql.NullInt64
	err := j.db.QueryRow(
		`SELECT COUNT(*), SUM(distance),
		        SUM(CASE WHEN ended_at IS NOT NULL THEN ended_at - started_at ELSE 0 END)
		 FROM sessions`,
	).Scan(&t.Sessions, &distance, &durationMs)
	if err != nil {
		return t, fmt.Errorf("storage: cannot query totals: %w", err)
	}
	t.Distance = distance.Float64
	t.Duration = time.Duration(durationMs.Int64) * time.Millisecond

	rows, err := j.db.Query("SELECT kind, COUNT(*) FROM events GROUP BY kind")
	if err != nil {
		return t, fmt.Errorf("storage: cannot query event counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return t, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		t.ByKind[kind] = n
	}
	if err := rows.Err(); err != nil {
		return t, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return t, nil
}
