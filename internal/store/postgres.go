package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	siteerrors "github.com/alexisbeaulieu97/siterender/pkg/errors"
)

const postgresBackend = "postgres"

// siteRow is the gorm model behind the Postgres store.
type siteRow struct {
	ID         string          `gorm:"primaryKey"`
	Name       string          `gorm:"not null;default:''"`
	Definition json.RawMessage `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (siteRow) TableName() string { return "sites" }

func (r siteRow) record() Record {
	return Record{ID: r.ID, Name: r.Name, Definition: r.Definition, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

// Postgres stores records in a jsonb column.
type Postgres struct {
	db  *gorm.DB
	now func() time.Time
}

// OpenPostgres connects with dsn and migrates the sites table.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, siteerrors.NewStoreError(postgresBackend, "open", err)
	}
	return newPostgres(ctx, db)
}

func newPostgres(ctx context.Context, db *gorm.DB) (*Postgres, error) {
	if err := db.WithContext(ctx).AutoMigrate(&siteRow{}); err != nil {
		return nil, siteerrors.NewStoreError(postgresBackend, "migrate", err)
	}
	return &Postgres{db: db, now: time.Now}, nil
}

// Get implements Source.
func (p *Postgres) Get(ctx context.Context, id string) (Record, error) {
	var row siteRow
	err := p.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, siteerrors.NewStoreError(postgresBackend, "get", err)
	}
	return row.record(), nil
}

// List implements Source. Records are ordered by id.
func (p *Postgres) List(ctx context.Context) ([]Record, error) {
	var rows []siteRow
	if err := p.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, siteerrors.NewStoreError(postgresBackend, "list", err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.record())
	}
	return records, nil
}

// Put implements Store.
func (p *Postgres) Put(ctx context.Context, rec Record) (Record, error) {
	rec, err := prepare(rec, p.now().UTC())
	if err != nil {
		return Record{}, siteerrors.NewStoreError(postgresBackend, "put", err)
	}

	row := siteRow{ID: rec.ID, Name: rec.Name, Definition: rec.Definition, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt}
	err = p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "definition", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return Record{}, siteerrors.NewStoreError(postgresBackend, "put", err)
	}

	return p.Get(ctx, rec.ID)
}

// Delete implements Store.
func (p *Postgres) Delete(ctx context.Context, id string) error {
	res := p.db.WithContext(ctx).Delete(&siteRow{}, "id = ?", id)
	if res.Error != nil {
		return siteerrors.NewStoreError(postgresBackend, "delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Close implements Store.
func (p *Postgres) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
