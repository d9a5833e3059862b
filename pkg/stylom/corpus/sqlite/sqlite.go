package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/stylom/stylom/pkg/stylom/corpus"
)

// sqliteStore implements corpus.Store using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite-backed sample store with WAL mode enabled,
// creating the schema if needed.
func Open(ctx context.Context, path string) (corpus.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS samples (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT,
	author TEXT
);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// PutSample appends one raw sample.
func (s *sqliteStore) PutSample(ctx context.Context, sample corpus.Sample) error {
	var text, author sql.NullString
	if sample.Text != nil {
		text = sql.NullString{String: *sample.Text, Valid: true}
	}
	if sample.Author != nil {
		author = sql.NullString{String: *sample.Author, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO samples (text, author) VALUES (?, ?)", text, author)
	if err != nil {
		return fmt.Errorf("put sample: %w", err)
	}
	return nil
}

// Samples returns all stored samples in insertion order.
func (s *sqliteStore) Samples(ctx context.Context) (*corpus.Table, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT text, author FROM samples ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	var samples []corpus.Sample
	for rows.Next() {
		var text, author sql.NullString
		if err := rows.Scan(&text, &author); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		var sample corpus.Sample
		if text.Valid {
			sample.Text = &text.String
		}
		if author.Valid {
			sample.Author = &author.String
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return corpus.FromSamples(samples), nil
}

// Count returns the number of stored samples.
func (s *sqliteStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM samples").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count samples: %w", err)
	}
	return n, nil
}
