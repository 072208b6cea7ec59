package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DefaultListLimit bounds List when the caller does not.
const DefaultListLimit = 20

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id TEXT PRIMARY KEY,
	submitted_at DATETIME NOT NULL,
	label TEXT NOT NULL,
	file_name TEXT NOT NULL,
	file_size INTEGER NOT NULL,
	phase TEXT NOT NULL,
	method TEXT NOT NULL,
	request_time REAL NOT NULL,
	notice TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_submissions_submitted_at
	ON submissions(submitted_at DESC);
`

type store struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSystem opens the submission record at path, creating the file and
// its schema when absent.
func NewSystem(path string, logger *slog.Logger) (System, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	// Single writer keeps modernc's file locking out of the way.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}

	return &store{
		db:     db,
		logger: logger.With("system", "history"),
	}, nil
}

func (s *store) Record(ctx context.Context, entry Entry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	if entry.SubmittedAt.IsZero() {
		entry.SubmittedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO submissions
			(id, submitted_at, label, file_name, file_size, phase, method, request_time, notice)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID.String(),
		entry.SubmittedAt,
		entry.Label,
		entry.FileName,
		entry.FileSize,
		entry.Phase,
		entry.Method,
		entry.RequestTime,
		entry.Notice,
	)
	if err != nil {
		return fmt.Errorf("record submission: %w", err)
	}

	s.logger.Debug(
		"recorded submission",
		"id", entry.ID.String(),
		"label", entry.Label,
		"phase", entry.Phase,
	)

	return nil
}

func (s *store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, submitted_at, label, file_name, file_size, phase, method, request_time, notice
		FROM submissions
		ORDER BY submitted_at DESC, id
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}

	for rows.Next() {
		var (
			entry Entry
			id    string
		)

		if err := rows.Scan(
			&id,
			&entry.SubmittedAt,
			&entry.Label,
			&entry.FileName,
			&entry.FileSize,
			&entry.Phase,
			&entry.Method,
			&entry.RequestTime,
			&entry.Notice,
		); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}

		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse submission id %q: %w", id, err)
		}

		entry.ID = parsed
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	return entries, nil
}

func (s *store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM submissions"); err != nil {
		return fmt.Errorf("clear submissions: %w", err)
	}

	return nil
}

func (s *store) Close() error {
	return s.db.Close()
}
