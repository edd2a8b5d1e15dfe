package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	siteerrors "github.com/alexisbeaulieu97/siterender/pkg/errors"
)

const sqliteBackend = "sqlite"

var sqliteMigrations = []string{
	`CREATE TABLE IF NOT EXISTS sites (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		definition TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sites_updated ON sites(updated_at)`,
}

// SQLite stores records in a single-file database.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens or creates the database at path and applies migrations.
// The path ":memory:" opens a private in-memory database.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, siteerrors.NewStoreError(sqliteBackend, "open", fmt.Errorf("create database directory: %w", err))
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, siteerrors.NewStoreError(sqliteBackend, "open", err)
	}
	// A single connection keeps an in-memory database shared and serialises writers.
	db.SetMaxOpenConns(1)

	for _, m := range sqliteMigrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			_ = db.Close()
			return nil, siteerrors.NewStoreError(sqliteBackend, "migrate", fmt.Errorf("%w\nSQL: %s", err, m))
		}
	}

	return &SQLite{db: db, now: time.Now}, nil
}

// Get implements Source.
func (s *SQLite) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, definition, created_at, updated_at FROM sites WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, siteerrors.NewStoreError(sqliteBackend, "get", err)
	}
	return rec, nil
}

// List implements Source. Records are ordered by id.
func (s *SQLite) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, definition, created_at, updated_at FROM sites ORDER BY id`)
	if err != nil {
		return nil, siteerrors.NewStoreError(sqliteBackend, "list", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, siteerrors.NewStoreError(sqliteBackend, "list", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, siteerrors.NewStoreError(sqliteBackend, "list", err)
	}
	return records, nil
}

// Put implements Store.
func (s *SQLite) Put(ctx context.Context, rec Record) (Record, error) {
	rec, err := prepare(rec, s.now().UTC())
	if err != nil {
		return Record{}, siteerrors.NewStoreError(sqliteBackend, "put", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sites (id, name, definition, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			definition = excluded.definition,
			updated_at = excluded.updated_at`,
		rec.ID, rec.Name, string(rec.Definition), rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return Record{}, siteerrors.NewStoreError(sqliteBackend, "put", err)
	}

	return s.Get(ctx, rec.ID)
}

// Delete implements Store.
func (s *SQLite) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sites WHERE id = ?`, id)
	if err != nil {
		return siteerrors.NewStoreError(sqliteBackend, "delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return siteerrors.NewStoreError(sqliteBackend, "delete", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close implements Store.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var (
		rec        Record
		definition string
	)
	if err := row.Scan(&rec.ID, &rec.Name, &definition, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return Record{}, err
	}
	rec.Definition = []byte(definition)
	return rec, nil
}
