// Package history stores comparison runs in a local SQLite database so
// results can be reviewed after the fact.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/abdul-hamid-achik/jsonspec/packages/compare"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	expected_file TEXT NOT NULL,
	actual_file TEXT NOT NULL,
	passed INTEGER NOT NULL,
	failure_count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS failures (
	run_id TEXT NOT NULL REFERENCES runs(id),
	seq INTEGER NOT NULL,
	path TEXT NOT NULL,
	message TEXT NOT NULL,
	expected TEXT,
	actual TEXT,
	PRIMARY KEY (run_id, seq)
);`

// Run is one recorded comparison.
type Run struct {
	ID           string
	CreatedAt    time.Time
	ExpectedFile string
	ActualFile   string
	Passed       bool
	FailureCount int
}

// Store is a handle to the history database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores one run with its failures and returns the run id.
func (s *Store) Record(expectedFile, actualFile string, res compare.Result) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, expected_file, actual_file, passed, failure_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC(), expectedFile, actualFile, res.OK(), len(res.Failures))
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}
	for i, f := range res.Failures {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO failures (run_id, seq, path, message, expected, actual)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, i, f.Path, f.Message, f.Expected, f.Actual)
		if err != nil {
			return "", fmt.Errorf("failed to insert failure: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, expected_file, actual_file, passed, failure_count
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.ExpectedFile, &r.ActualFile, &r.Passed, &r.FailureCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return runs, nil
}

// Failures returns the stored failures of a run in order.
func (s *Store) Failures(runID string) ([]compare.Failure, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT path, message, expected, actual FROM failures
		 WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query failures: %w", err)
	}
	defer rows.Close()

	var fails []compare.Failure
	for rows.Next() {
		var f compare.Failure
		if err := rows.Scan(&f.Path, &f.Message, &f.Expected, &f.Actual); err != nil {
			return nil, fmt.Errorf("failed to scan failure: %w", err)
		}
		fails = append(fails, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return fails, nil
}
