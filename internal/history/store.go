// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite log of generated typing sessions.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/typestream/pkg/types"
)

const dbFile = "history.db"

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotFound is returned when no entry has the requested id.
var ErrNotFound = errors.New("history entry not found")

// Store manages the history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates dir/history.db and its schema.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			mode TEXT NOT NULL,
			test_type TEXT NOT NULL,
			words INTEGER NOT NULL,
			quote_source TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Add stores e, assigning an ID and timestamp when they are unset, and
// returns the stored entry.
func (s *Store) Add(ctx context.Context, e types.HistoryEntry) (types.HistoryEntry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.CreatedAt = e.CreatedAt.UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, created_at, mode, test_type, words, quote_source)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.CreatedAt.Format(timeLayout), e.Mode, e.TestType, e.Words, e.QuoteSource)
	if err != nil {
		return types.HistoryEntry{}, fmt.Errorf("inserting session %s: %w", e.ID, err)
	}
	return e, nil
}

// Get returns the entry with the given id.
func (s *Store) Get(ctx context.Context, id string) (types.HistoryEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, mode, test_type, words, quote_source FROM sessions WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.HistoryEntry{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return e, err
}

// List returns up to limit entries, newest first. A limit of 0 or less
// returns every entry.
func (s *Store) List(ctx context.Context, limit int) ([]types.HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, mode, test_type, words, quote_source
		 FROM sessions ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var out []types.HistoryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Clear deletes every entry and reports how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions`)
	if err != nil {
		return 0, fmt.Errorf("clearing sessions: %w", err)
	}
	return res.RowsAffected()
}

// Export writes every entry to w as "json" or "yaml".
func (s *Store) Export(ctx context.Context, w io.Writer, format string) error {
	entries, err := s.List(ctx, 0)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []types.HistoryEntry{}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(entries)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (types.HistoryEntry, error) {
	var (
		e       types.HistoryEntry
		created string
		source  sql.NullString
	)
	if err := sc.Scan(&e.ID, &created, &e.Mode, &e.TestType, &e.Words, &source); err != nil {
		return types.HistoryEntry{}, err
	}
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return types.HistoryEntry{}, fmt.Errorf("parsing created_at for %s: %w", e.ID, err)
	}
	e.CreatedAt = t
	e.QuoteSource = source.String
	return e, nil
}
