package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/siterender/internal/config"
	"github.com/alexisbeaulieu97/siterender/internal/site"
	"github.com/alexisbeaulieu97/siterender/internal/site/sitetest"
)

func bistroRecord(t *testing.T, id string) Record {
	t.Helper()

	def, err := site.Parse([]byte(sitetest.Bistro), site.FormatJSON)
	require.NoError(t, err)
	rec, err := NewRecord(id, def)
	require.NoError(t, err)
	return rec
}

// exerciseStore runs the behaviour every Store must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "bistro")
	require.ErrorIs(t, err, ErrNotFound)

	stored, err := s.Put(ctx, bistroRecord(t, "bistro"))
	require.NoError(t, err)
	assert.Equal(t, "bistro", stored.ID)
	assert.Equal(t, "Bistro Lumiere", stored.Name)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.False(t, stored.UpdatedAt.IsZero())

	got, err := s.Get(ctx, "bistro")
	require.NoError(t, err)
	def, err := got.Site()
	require.NoError(t, err)
	require.Len(t, def.Pages, 2)
	unknown, ok := def.Pages[0].Sections[2].Content.(*site.UnknownContent)
	require.True(t, ok)
	assert.Equal(t, "pricing-table", unknown.Type)
	assert.JSONEq(t, `{"plans":[{"name":"Lunch","price":19}]}`, string(unknown.Raw))

	replacement := bistroRecord(t, "bistro")
	replacement.Name = "Bistro Lumiere v2"
	_, err = s.Put(ctx, replacement)
	require.NoError(t, err)

	_, err = s.Put(ctx, bistroRecord(t, "annex"))
	require.NoError(t, err)

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "annex", records[0].ID)
	assert.Equal(t, "bistro", records[1].ID)

	require.NoError(t, s.Delete(ctx, "annex"))
	assert.ErrorIs(t, s.Delete(ctx, "annex"), ErrNotFound)

	records, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestNewRecordRejectsBadID(t *testing.T) {
	t.Parallel()

	_, err := NewRecord("Not An ID", &site.Definition{})
	assert.Error(t, err)
}

func TestPutRejectsInvalidJSON(t *testing.T) {
	t.Parallel()

	s, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.Put(context.Background(), Record{ID: "broken", Definition: json.RawMessage(`{"pages":`)})
	assert.Error(t, err)
}

func TestOpenSelectsDriver(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	s, err := Open(ctx, config.StoreConfig{Driver: "sqlite", Path: filepath.Join(dir, "db", "sites.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, s)
	require.NoError(t, s.Close())

	s, err = Open(ctx, config.StoreConfig{Driver: "dir", Dir: filepath.Join(dir, "sites")})
	require.NoError(t, err)
	assert.IsType(t, &Dir{}, s)
	require.NoError(t, s.Close())

	_, err = Open(ctx, config.StoreConfig{Driver: "mongo"})
	assert.Error(t, err)
}
