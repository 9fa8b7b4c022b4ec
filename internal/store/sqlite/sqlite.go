package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/driftchat/driftchat-server/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS pair_sessions (
	id         TEXT PRIMARY KEY,
	started_at DATETIME NOT NULL,
	ended_at   DATETIME,
	end_reason TEXT
);
CREATE INDEX IF NOT EXISTS idx_pair_sessions_end_reason ON pair_sessions(end_reason);
`

// SQLiteStore implements store.Store for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLite store and applies the schema.
// dbPath is the path to the SQLite database file.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// RecordPairStarted inserts a new session row.
func (s *SQLiteStore) RecordPairStarted(ctx context.Context, sessionID string, startedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pair_sessions (id, started_at) VALUES (?, ?)`,
		sessionID, startedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert pair session: %w", err)
	}
	return nil
}

// RecordPairEnded marks a session finished. Unknown session ids are ignored;
// the account is best-effort.
func (s *SQLiteStore) RecordPairEnded(ctx context.Context, sessionID, reason string, endedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE pair_sessions SET ended_at = ?, end_reason = ? WHERE id = ? AND ended_at IS NULL`,
		endedAt.UTC(), reason, sessionID,
	)
	if err != nil {
		return fmt.Errorf("update pair session: %w", err)
	}
	return nil
}

// Totals aggregates session counters.
func (s *SQLiteStore) Totals(ctx context.Context) (store.Totals, error) {
	totals := store.Totals{EndedByReason: make(map[string]int64)}

	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(ended_at) FROM pair_sessions`)
	if err := row.Scan(&totals.SessionsStarted, &totals.SessionsEnded); err != nil {
		return totals, fmt.Errorf("count pair sessions: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT end_reason, COUNT(*) FROM pair_sessions
		 WHERE end_reason IS NOT NULL GROUP BY end_reason`)
	if err != nil {
		return totals, fmt.Errorf("group pair sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var reason string
		var n int64
		if err := rows.Scan(&reason, &n); err != nil {
			return totals, fmt.Errorf("scan reason row: %w", err)
		}
		totals.EndedByReason[reason] = n
	}
	if err := rows.Err(); err != nil {
		return totals, fmt.Errorf("iterate reason rows: %w", err)
	}

	return totals, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
