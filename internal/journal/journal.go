package journal

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Stage outcomes recorded per attempt.
const (
	OutcomeSkipped   = "skipped"
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
)

const schema = `
CREATE TABLE IF NOT EXISTS stage_runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	stage       TEXT NOT NULL,
	command     TEXT NOT NULL DEFAULT '',
	outcome     TEXT NOT NULL,
	detail      TEXT NOT NULL DEFAULT '',
	started_at  TEXT,
	finished_at TEXT,
	recorded_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_stage_runs_stage ON stage_runs(stage, id);
`

// Journal persists per-stage attempt records in the work directory. It is
// operator forensics only: resume decisions come from artifact validity,
// never from here.
type Journal struct {
	db   *sql.DB
	path string
}

// Entry is one recorded stage attempt.
type Entry struct {
	ID         int64
	Stage      string
	Command    string
	Outcome    string
	Detail     string
	StartedAt  string
	FinishedAt string
	RecordedAt string
}

// FileName is the journal database file inside the work directory.
const FileName = "journal.db"

// Open initializes or connects to the journal database inside dir.
func Open(dir string) (*Journal, error) {
	dbPath := filepath.Join(dir, FileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init journal schema: %w", err)
	}

	return &Journal{db: db, path: dbPath}, nil
}

// Path returns the database file location.
func (j *Journal) Path() string {
	if j == nil {
		return ""
	}
	return j.path
}

// Close closes the underlying database connection.
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

// RecordSkip notes that a stage's output was already valid.
func (j *Journal) RecordSkip(ctx context.Context, stage string) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO stage_runs (stage, outcome, recorded_at) VALUES (?, ?, ?)`,
		stage, OutcomeSkipped, now())
	return err
}

// RecordRun notes one real stage execution and its outcome.
func (j *Journal) RecordRun(ctx context.Context, stage, command string, started, finished time.Time, runErr error) error {
	outcome := OutcomeCompleted
	detail := ""
	if runErr != nil {
		outcome = OutcomeFailed
		detail = runErr.Error()
	}
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO stage_runs (stage, command, outcome, detail, started_at, finished_at, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		stage, command, outcome, detail,
		started.UTC().Format(time.RFC3339), finished.UTC().Format(time.RFC3339), now())
	return err
}

// History returns every recorded attempt in insertion order.
func (j *Journal) History(ctx context.Context) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, stage, command, outcome, detail,
		        COALESCE(started_at, ''), COALESCE(finished_at, ''), recorded_at
		 FROM stage_runs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query journal history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Stage, &e.Command, &e.Outcome, &e.Detail,
			&e.StartedAt, &e.FinishedAt, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LastOutcome returns the most recent outcome recorded for a stage, if any.
func (j *Journal) LastOutcome(ctx context.Context, stage string) (string, bool, error) {
	row := j.db.QueryRowContext(ctx,
		`SELECT outcome FROM stage_runs WHERE stage = ? ORDER BY id DESC LIMIT 1`, stage)
	var outcome string
	switch err := row.Scan(&outcome); err {
	case nil:
		return outcome, true, nil
	case sql.ErrNoRows:
		return "", false, nil
	default:
		return "", false, err
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
