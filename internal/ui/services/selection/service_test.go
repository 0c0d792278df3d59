package selection

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recsel/internal/domain"
)

func records(ids ...int64) []domain.Record {
	recs := make([]domain.Record, 0, len(ids))
	for _, id := range ids {
		recs = append(recs, domain.Record{ID: id, Title: fmt.Sprintf("Record %04d", id)})
	}
	return recs
}

func TestToggleFlipsMembership(t *testing.T) {
	s := NewService(nil)
	rec := domain.Record{ID: 7, Title: "Record 0007"}

	assert.True(t, s.Toggle(rec))
	assert.True(t, s.IsSelected(7))
	assert.Equal(t, 1, s.Count())

	assert.False(t, s.Toggle(rec))
	assert.False(t, s.IsSelected(7))
	assert.Equal(t, 0, s.Count())
}

func TestToggleIsInvolution(t *testing.T) {
	s := NewService(nil)
	rec := domain.Record{ID: 3}

	for i := 0; i < 10; i++ {
		s.Toggle(rec)
	}
	assert.Equal(t, 0, s.Count(), "an even number of toggles restores the empty set")
}

func TestAddSkipsExisting(t *testing.T) {
	s := NewService(nil)
	rec := domain.Record{ID: 1}

	assert.True(t, s.Add(rec))
	assert.False(t, s.Add(rec), "second add reports nothing new")
	assert.Equal(t, 1, s.Count())
}

func TestToggleAllSelectsMissing(t *testing.T) {
	s := NewService(nil)
	page := records(1, 2, 3, 4, 5)
	s.Toggle(page[1]) // 2 already selected

	s.ToggleAllOnPage(page)

	assert.Equal(t, 5, s.Count())
	for _, rec := range page {
		assert.True(t, s.IsSelected(rec.ID), "record %d", rec.ID)
	}
}

func TestToggleAllRemovesWhenComplete(t *testing.T) {
	s := NewService(nil)
	page := records(1, 2, 3)
	s.ToggleAllOnPage(page)
	require.Equal(t, 3, s.Count())

	// Every item selected, so the toggle removes them all
	s.ToggleAllOnPage(page)
	assert.Equal(t, 0, s.Count())
}

func TestToggleAllLeavesOtherPagesAlone(t *testing.T) {
	s := NewService(nil)
	s.Toggle(domain.Record{ID: 99})

	page := records(1, 2, 3)
	s.ToggleAllOnPage(page)
	s.ToggleAllOnPage(page)

	assert.True(t, s.IsSelected(99), "records from other pages survive the page toggle")
	assert.Equal(t, 1, s.Count())
}

func TestToggleAllEmptyPageIsNoOp(t *testing.T) {
	s := NewService(nil)
	s.ToggleAllOnPage(nil)
	assert.Equal(t, 0, s.Count())
}

func TestClear(t *testing.T) {
	s := NewService(nil)
	s.ToggleAllOnPage(records(1, 2, 3, 4))

	assert.Equal(t, 4, s.Clear())
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.IsSelected(1))

	assert.Equal(t, 0, s.Clear(), "clearing an empty selection reports zero")
}

func TestIDsPreserveInsertionOrder(t *testing.T) {
	s := NewService(nil)
	s.Toggle(domain.Record{ID: 30})
	s.Toggle(domain.Record{ID: 10})
	s.Toggle(domain.Record{ID: 20})

	assert.Equal(t, []int64{30, 10, 20}, s.IDs())

	// Removing from the middle keeps the rest in order
	s.Toggle(domain.Record{ID: 10})
	assert.Equal(t, []int64{30, 20}, s.IDs())
}

func TestRecordsRetainPayloads(t *testing.T) {
	s := NewService(nil)
	s.Toggle(domain.Record{ID: 5, Title: "Record 0005", Label: "batch-1"})

	recs := s.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, "Record 0005", recs[0].Title)
	assert.Equal(t, "batch-1", recs[0].Label)
}
