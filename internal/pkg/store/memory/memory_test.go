package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paceline/paceline/internal/pkg/store"
)

type testDoc struct {
	ID     string   `json:"id"`
	Owner  string   `json:"owner"`
	Status string   `json:"status"`
	Tags   []string `json:"tags"`
}

func TestCreateGetUpdateDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "docs", "d1", testDoc{ID: "d1", Owner: "u1", Status: "open"}))

	// Duplicate id is rejected
	err := s.Create(ctx, "docs", "d1", testDoc{ID: "d1"})
	assert.ErrorIs(t, err, store.ErrExists)

	rec, err := s.Get(ctx, "docs", "d1")
	require.NoError(t, err)
	assert.Equal(t, "u1", rec["owner"])

	require.NoError(t, s.Update(ctx, "docs", "d1", store.Record{"status": "closed"}))
	rec, err = s.Get(ctx, "docs", "d1")
	require.NoError(t, err)
	assert.Equal(t, "closed", rec["status"])
	assert.Equal(t, "u1", rec["owner"], "update merges, not replaces")

	require.NoError(t, s.Delete(ctx, "docs", "d1"))
	_, err = s.Get(ctx, "docs", "d1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "docs", "d1"), store.ErrNotFound)
	assert.ErrorIs(t, s.Update(ctx, "docs", "d1", store.Record{"x": 1}), store.ErrNotFound)
}

func TestArrayAppend(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "docs", "d1", testDoc{ID: "d1", Tags: []string{"a"}}))
	require.NoError(t, s.ArrayAppend(ctx, "docs", "d1", "tags", "b", "c"))

	var out testDoc
	rec, err := s.Get(ctx, "docs", "d1")
	require.NoError(t, err)
	require.NoError(t, store.Decode(rec, &out))
	assert.Equal(t, []string{"a", "b", "c"}, out.Tags)

	assert.ErrorIs(t, s.ArrayAppend(ctx, "docs", "missing", "tags", "x"), store.ErrNotFound)
}

func TestArrayAppend_StructElements(t *testing.T) {
	type point struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	type trail struct {
		ID     string  `json:"id"`
		Points []point `json:"points"`
	}

	s := New()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "trails", "t1", trail{ID: "t1"}))
	require.NoError(t, s.ArrayAppend(ctx, "trails", "t1", "points",
		point{Lat: 51.5, Lng: -0.12}, point{Lat: 51.6, Lng: -0.13}))

	rec, err := s.Get(ctx, "trails", "t1")
	require.NoError(t, err)

	var out trail
	require.NoError(t, store.Decode(rec, &out))
	require.Len(t, out.Points, 2)
	assert.Equal(t, 51.6, out.Points[1].Lat)
}

func TestMutate(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "docs", "d1", testDoc{ID: "d1", Status: "open", Tags: []string{"a"}}))

	require.NoError(t, s.Mutate(ctx, "docs", "d1", func(rec store.Record) error {
		rec["status"] = "closed"
		tags, _ := rec["tags"].([]interface{})
		rec["tags"] = append(append([]interface{}{}, tags...), "b")
		return nil
	}))

	rec, err := s.Get(ctx, "docs", "d1")
	require.NoError(t, err)
	assert.Equal(t, "closed", rec["status"])
	assert.Len(t, rec["tags"], 2)

	assert.ErrorIs(t, s.Mutate(ctx, "docs", "missing", func(store.Record) error { return nil }), store.ErrNotFound)
}

func TestMutate_AbortLeavesDocumentUntouched(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "docs", "d1", testDoc{ID: "d1", Status: "open"}))

	abort := assert.AnError
	err := s.Mutate(ctx, "docs", "d1", func(rec store.Record) error {
		rec["status"] = "closed"
		return abort
	})
	assert.ErrorIs(t, err, abort)

	rec, getErr := s.Get(ctx, "docs", "d1")
	require.NoError(t, getErr)
	assert.Equal(t, "open", rec["status"])
}

func TestFind(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "docs", "d1", testDoc{ID: "d1", Owner: "u1", Status: "open"}))
	require.NoError(t, s.Create(ctx, "docs", "d2", testDoc{ID: "d2", Owner: "u2", Status: "open"}))
	require.NoError(t, s.Create(ctx, "docs", "d3", testDoc{ID: "d3", Owner: "u1", Status: "closed"}))

	results, err := s.Find(ctx, store.Query{
		Collection: "docs",
		Filters:    []store.Filter{store.Eq("owner", "u1")},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "d1", results[0].ID())
	assert.Equal(t, "d3", results[1].ID())

	results, err = s.Find(ctx, store.Query{
		Collection: "docs",
		Filters:    []store.Filter{store.Eq("owner", "u1"), store.Eq("status", "open")},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "d1", results[0].ID())
}

func waitForEmission(t *testing.T, sub *store.Subscription) []store.Record {
	t.Helper()
	select {
	case recs, ok := <-sub.Updates():
		require.True(t, ok, "subscription closed unexpectedly")
		return recs
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for live query emission")
		return nil
	}
}

func TestWatch_EmitsInitialAndChangedResultSets(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "docs", "d1", testDoc{ID: "d1", Status: "open"}))

	sub, err := s.Watch(ctx, store.Query{
		Collection: "docs",
		Filters:    []store.Filter{store.Eq("status", "open")},
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	initial := waitForEmission(t, sub)
	require.Len(t, initial, 1)
	assert.Equal(t, "d1", initial[0].ID())

	// A matching create grows the result set
	require.NoError(t, s.Create(ctx, "docs", "d2", testDoc{ID: "d2", Status: "open"}))
	next := waitForEmission(t, sub)
	require.Len(t, next, 2)

	// A document leaving the predicate shrinks it
	require.NoError(t, s.Update(ctx, "docs", "d1", store.Record{"status": "closed"}))
	next = waitForEmission(t, sub)
	require.Len(t, next, 1)
	assert.Equal(t, "d2", next[0].ID())
}

func TestWatch_IgnoresOtherCollections(t *testing.T) {
	s := New()
	ctx := context.Background()

	sub, err := s.Watch(ctx, store.Query{Collection: "docs"})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	assert.Empty(t, waitForEmission(t, sub))

	require.NoError(t, s.Create(ctx, "other", "x1", testDoc{ID: "x1"}))

	select {
	case recs := <-sub.Updates():
		t.Fatalf("unexpected emission for unrelated collection: %v", recs)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatch_UnsubscribeClosesChannel(t *testing.T) {
	s := New()
	ctx := context.Background()

	sub, err := s.Watch(ctx, store.Query{Collection: "docs"})
	require.NoError(t, err)

	waitForEmission(t, sub)
	sub.Unsubscribe()

	select {
	case _, ok := <-sub.Updates():
		assert.False(t, ok, "channel should be closed after unsubscribe")
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after unsubscribe")
	}
}

func TestWatch_ContextCancelStopsWatcher(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := s.Watch(ctx, store.Query{Collection: "docs"})
	require.NoError(t, err)

	waitForEmission(t, sub)
	cancel()

	select {
	case _, ok := <-sub.Updates():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after context cancellation")
	}
}
