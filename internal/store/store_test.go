package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := OpenSQLite(dbPath)
	require.NoError(t, err, "open db")
	t.Cleanup(func() { db.Close() })

	s, err := New(db)
	require.NoError(t, err, "new store")
	return s
}

func TestSeedFillsEmptyStore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	inserted, err := s.Seed(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, inserted)

	count, err := s.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, count)
}

func TestSeedSkipsPopulatedStore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateRecord(ctx, "Existing record", "")
	require.NoError(t, err)

	inserted, err := s.Seed(ctx, 25)
	require.NoError(t, err)
	assert.Zero(t, inserted, "seed must not touch a populated store")

	count, err := s.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestListRecordsWindows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Seed(ctx, 25)
	require.NoError(t, err)

	first, err := s.ListRecords(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, first, 10)
	assert.Equal(t, int64(1), first[0].ID)
	assert.Equal(t, int64(10), first[9].ID)
	assert.Equal(t, "Sample record 0001", first[0].Title)

	last, err := s.ListRecords(ctx, 20, 10)
	require.NoError(t, err)
	assert.Len(t, last, 5, "the final window is short")
	assert.Equal(t, int64(21), last[0].ID)

	beyond, err := s.ListRecords(ctx, 100, 10)
	require.NoError(t, err)
	assert.Empty(t, beyond, "a window past the end is empty, not an error")
}

func TestCreateRecordAssignsSequentialIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateRecord(ctx, "First", "alpha")
	require.NoError(t, err)
	second, err := s.CreateRecord(ctx, "Second", "")
	require.NoError(t, err)

	assert.Equal(t, first+1, second)

	records, err := s.ListRecords(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "First", records[0].Title)
	assert.Equal(t, "alpha", records[0].Label)
	assert.Empty(t, records[1].Label)
}

func TestMigrateIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := OpenSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := New(db)
	require.NoError(t, err)
	_, err = s.Seed(context.Background(), 5)
	require.NoError(t, err)

	// Opening the store again must not disturb existing data
	again, err := New(db)
	require.NoError(t, err)

	count, err := again.CountRecords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
