// Package history keeps a local SQLite log of translations run from the CLI.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultLimit is used by List when limit is not positive.
const DefaultLimit = 20

const schema = `
CREATE TABLE IF NOT EXISTS translations (
	"id" INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
	"created_at" DATETIME NOT NULL,
	"input_text" TEXT NOT NULL,
	"translated_text" TEXT NOT NULL,
	"input_language" TEXT,
	"output_language" TEXT NOT NULL,
	"model" TEXT,
	"segments" INTEGER DEFAULT 0
);`

// Entry is one recorded translation.
type Entry struct {
	ID             int64
	CreatedAt      time.Time
	InputText      string
	TranslatedText string
	InputLanguage  string
	OutputLanguage string
	Model          string
	Segments       int
}

// Store is the history database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	// One writer; avoids SQLITE_BUSY between pooled connections.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts e and returns its ID. A zero CreatedAt is set to now.
func (s *Store) Record(ctx context.Context, e Entry) (int64, error) {
	if e.OutputLanguage == "" {
		return 0, fmt.Errorf("output language is required")
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx, `
	INSERT INTO translations (
		created_at, input_text, translated_text, input_language, output_language, model, segments
	) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.CreatedAt.UTC(), e.InputText, e.TranslatedText, e.InputLanguage, e.OutputLanguage, e.Model, e.Segments,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record translation: %w", err)
	}
	return res.LastInsertId()
}

// List returns up to limit entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx, `
	SELECT id, created_at, input_text, translated_text,
		COALESCE(input_language, ''), output_language, COALESCE(model, ''), segments
	FROM translations
	ORDER BY created_at DESC, id DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.InputText, &e.TranslatedText,
			&e.InputLanguage, &e.OutputLanguage, &e.Model, &e.Segments); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
