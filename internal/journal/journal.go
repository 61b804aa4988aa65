// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal keeps a local SQLite log of the tasks and notes created
// through the workflow. The journal is write-side history only; searches
// never read from it.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/notion-alfred/pkg/types"
)

const defaultLimit = 20

// Journal wraps the journal database.
type Journal struct {
	db *sql.DB
}

// Open opens or creates the journal at path, creating parent directories and
// the schema as needed.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}

	j := &Journal{db: db}
	if err := j.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating journal schema: %w", err)
	}
	return j, nil
}

// Close releases the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			page_id TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL,
			title TEXT NOT NULL,
			url TEXT,
			icon TEXT,
			database_id TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := j.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores e. Recording the same page twice keeps the first entry.
func (j *Journal) Record(ctx context.Context, e types.JournalEntry) error {
	if e.PageID == "" {
		return fmt.Errorf("journal entry has no page id")
	}
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := j.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO entries (page_id, kind, title, url, icon, database_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.PageID, string(e.Kind), e.Title, e.URL, e.Icon, e.DatabaseID,
		created.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording %s %s: %w", e.Kind, e.PageID, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. A limit of 0 uses the
// default (20); a negative limit returns everything.
func (j *Journal) Recent(ctx context.Context, limit int) ([]types.JournalEntry, error) {
	if limit == 0 {
		limit = defaultLimit
	}
	rows, err := j.db.QueryContext(ctx,
		`SELECT page_id, kind, title, url, icon, database_id, created_at
		 FROM entries ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()

	var entries []types.JournalEntry
	for rows.Next() {
		var (
			e       types.JournalEntry
			kind    string
			url     sql.NullString
			icon    sql.NullString
			dbID    sql.NullString
			created string
		)
		if err := rows.Scan(&e.PageID, &kind, &e.Title, &url, &icon, &dbID, &created); err != nil {
			return nil, fmt.Errorf("scanning journal row: %w", err)
		}
		e.Kind = types.RecordKind(kind)
		e.URL, e.Icon, e.DatabaseID = url.String, icon.String, dbID.String
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Index converts entries into a result index keyed by title so history can
// be rendered like search results. Entries are expected newest first; when
// titles repeat, the first (newest) one is kept.
func Index(entries []types.JournalEntry) *types.ResultIndex {
	idx := types.NewResultIndex(len(entries))
	for _, e := range entries {
		if _, ok := idx.Get(e.Title); ok {
			continue
		}
		idx.Set(e.Title, types.NormalizedResult{ID: e.PageID, URL: e.URL, Icon: e.Icon})
	}
	return idx
}
