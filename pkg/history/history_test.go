package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t0 time.Time) func() time.Time {
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * time.Second)
	}
}

func TestList_AddMostRecentFirst(t *testing.T) {
	l := NewList(0)
	assert.Equal(t, DefaultCapacity, l.Capacity())

	l.Add(Entry{Hex: "#111111"})
	l.Add(Entry{Hex: "#222222"})
	l.Add(Entry{Hex: "#333333"})

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "#333333", entries[0].Hex)
	assert.Equal(t, "#111111", entries[2].Hex)
}

func TestList_AddFillsIDAndTimestamp(t *testing.T) {
	l := NewList(5)
	t0 := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	l.now = fixedClock(t0)

	e := l.Add(Entry{Hex: "#abcdef"})
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, t0.Add(time.Second), e.Timestamp)

	keep := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	e2 := l.Add(Entry{ID: "fixed", Hex: "#000000", Timestamp: keep})
	assert.Equal(t, "fixed", e2.ID)
	assert.Equal(t, keep, e2.Timestamp)
}

func TestList_DedupeCaseInsensitive(t *testing.T) {
	l := NewList(5)
	l.Add(Entry{Hex: "#abcdef", L: 0.1})
	l.Add(Entry{Hex: "#123456"})
	l.Add(Entry{Hex: "#ABCDEF", L: 0.9})

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "#ABCDEF", entries[0].Hex)
	assert.Equal(t, 0.9, entries[0].L)
	assert.Equal(t, "#123456", entries[1].Hex)
}

func TestList_EvictsOldestBeyondCapacity(t *testing.T) {
	l := NewList(DefaultCapacity)
	for i := 0; i < 25; i++ {
		l.Add(Entry{Hex: fmt.Sprintf("#0000%02x", i)})
	}

	entries := l.Entries()
	require.Len(t, entries, DefaultCapacity)
	assert.Equal(t, "#000018", entries[0].Hex)
	assert.Equal(t, "#000005", entries[DefaultCapacity-1].Hex)
}

func TestList_DedupeAtCapacityKeepsOthers(t *testing.T) {
	l := NewList(3)
	l.Add(Entry{Hex: "#000001"})
	l.Add(Entry{Hex: "#000002"})
	l.Add(Entry{Hex: "#000003"})
	l.Add(Entry{Hex: "#000001"})

	var hexes []string
	for _, e := range l.Entries() {
		hexes = append(hexes, e.Hex)
	}
	assert.Equal(t, []string{"#000001", "#000003", "#000002"}, hexes)
}

func TestList_ReplaceAndClear(t *testing.T) {
	l := NewList(2)
	l.Replace([]Entry{
		{ID: "a", Hex: "#aaaaaa"},
		{ID: "b", Hex: "#bbbbbb"},
		{ID: "c", Hex: "#cccccc"},
	})

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)

	l.Clear()
	assert.Equal(t, 0, l.Len())
}

func TestList_EntriesIsCopy(t *testing.T) {
	l := NewList(2)
	l.Add(Entry{Hex: "#aaaaaa"})
	entries := l.Entries()
	entries[0].Hex = "#changed"
	assert.Equal(t, "#aaaaaa", l.Entries()[0].Hex)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	var s MemoryStore

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	require.NoError(t, s.Save(ctx, []Entry{{Hex: "#111111"}}))
	loaded, err = s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "history.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)

	ts := time.Date(2026, 10, 19, 12, 0, 0, 123, time.UTC)
	want := []Entry{
		{ID: "1", Hex: "#3b82f6", L: 0.623, C: 0.188, H: 259.8, Timestamp: ts},
		{ID: "2", Hex: "#ef4444", L: 0.637, C: 0.208, H: 25.3, Timestamp: ts.Add(-time.Minute)},
	}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Save replaces rather than appends.
	require.NoError(t, store.Save(ctx, want[:1]))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	require.NoError(t, store.Close())

	// Data survives reopening.
	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()
	got, err = reopened.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "#3b82f6", got[0].Hex)
}

func TestSQLiteStore_WithList(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer store.Close()

	l := NewList(3)
	for _, hex := range []string{"#111111", "#222222", "#333333", "#444444"} {
		l.Add(Entry{Hex: hex})
	}
	require.NoError(t, store.Save(ctx, l.Entries()))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)

	restored := NewList(3)
	restored.Replace(loaded)
	assert.Equal(t, l.Entries()[0].Hex, restored.Entries()[0].Hex)
	assert.Equal(t, 3, restored.Len())
}
