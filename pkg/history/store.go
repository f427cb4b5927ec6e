// Package history journals play sessions to SQLite for the CLI host. The
// engine core keeps all state in memory; this store only archives what each
// turn produced, for later review.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dotsetgreg/veil/pkg/parser"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store is an append-only session/turn journal.
type Store struct {
	db *sql.DB
}

// Open creates/opens the journal database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Single-process host. One shared connection avoids writer lock
	// contention with SQLite.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &Store{db: db}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) init() error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`PRAGMA synchronous=NORMAL;`,
		`PRAGMA busy_timeout=5000;`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			persona_id TEXT NOT NULL,
			started_at_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS turns (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			player_input TEXT NOT NULL,
			action_type TEXT NOT NULL,
			action_target TEXT NOT NULL,
			action_parameter TEXT NOT NULL,
			action_value TEXT NOT NULL,
			dialogue TEXT NOT NULL,
			relationship REAL NOT NULL,
			created_at_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(session_id, seq);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("init history schema: %w", err)
		}
	}
	return nil
}

// BeginSession records a new play session against a persona and returns its id.
func (s *Store) BeginSession(personaID string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, persona_id, started_at_ms) VALUES (?, ?, ?)`,
		id, personaID, time.Now().UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("begin session: %w", err)
	}
	return id, nil
}

// RecordTurn appends one completed turn to a session.
func (s *Store) RecordTurn(sessionID string, seq int, input string, rec parser.Interaction, relationship float64) error {
	_, err := s.db.Exec(
		`INSERT INTO turns (id, session_id, seq, player_input, action_type, action_target, action_parameter, action_value, dialogue, relationship, created_at_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), sessionID, seq, input,
		rec.Action.Type, rec.Action.Target, rec.Action.Parameter, rec.Action.Value,
		rec.Dialogue, relationship, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record turn: %w", err)
	}
	return nil
}

// Turn is one archived turn as read back from the journal.
type Turn struct {
	Seq          int
	PlayerInput  string
	Action       parser.Action
	Dialogue     string
	Relationship float64
	CreatedAt    time.Time
}

// Turns reads a session's turns back in order.
func (s *Store) Turns(sessionID string) ([]Turn, error) {
	rows, err := s.db.Query(
		`SELECT seq, player_input, action_type, action_target, action_parameter, action_value, dialogue, relationship, created_at_ms
		 FROM turns WHERE session_id = ? ORDER BY seq ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	var out []Turn
	for rows.Next() {
		var t Turn
		var createdMS int64
		if err := rows.Scan(&t.Seq, &t.PlayerInput, &t.Action.Type, &t.Action.Target, &t.Action.Parameter, &t.Action.Value, &t.Dialogue, &t.Relationship, &createdMS); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		t.CreatedAt = time.UnixMilli(createdMS)
		out = append(out, t)
	}
	return out, rows.Err()
}
