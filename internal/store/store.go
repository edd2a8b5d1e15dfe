// Package store persists site definitions as whole documents. A record is
// replaced, never patched.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/siterender/internal/config"
	"github.com/alexisbeaulieu97/siterender/internal/site"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("site not found")

// Record is one stored site definition.
type Record struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Definition json.RawMessage `json:"definition"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// NewRecord encodes def as the JSON document of a record.
func NewRecord(id string, def *site.Definition) (Record, error) {
	if err := ValidateID(id); err != nil {
		return Record{}, err
	}
	data, err := json.Marshal(def)
	if err != nil {
		return Record{}, fmt.Errorf("encode site %s: %w", id, err)
	}
	return Record{ID: id, Name: def.Metadata.Title, Definition: data}, nil
}

// Site decodes the stored document.
func (r Record) Site() (*site.Definition, error) {
	return site.ParseNamed(r.ID, r.Definition, site.FormatJSON)
}

// Source reads site records.
type Source interface {
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context) ([]Record, error)
}

// Store reads and writes site records.
type Store interface {
	Source
	// Put creates or replaces the record and returns it as stored.
	Put(ctx context.Context, rec Record) (Record, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// Open creates the store selected by cfg.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite":
		return OpenSQLite(ctx, cfg.Path)
	case "postgres":
		return OpenPostgres(ctx, cfg.DSN)
	case "dir":
		return OpenDir(cfg.Dir)
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}

// prepare checks a record before it is written and stamps its times.
func prepare(rec Record, now time.Time) (Record, error) {
	if err := ValidateID(rec.ID); err != nil {
		return Record{}, err
	}
	if !json.Valid(rec.Definition) {
		return Record{}, fmt.Errorf("site %s: definition is not valid JSON", rec.ID)
	}
	rec.UpdatedAt = now
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	return rec, nil
}
