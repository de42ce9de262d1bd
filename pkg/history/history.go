// Package history keeps the converter's capped list of recent colors.
package history

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity is the number of entries kept when no capacity is given.
const DefaultCapacity = 20

// Entry is one converted color.
type Entry struct {
	ID        string    `json:"id"`
	Hex       string    `json:"hex"`
	L         float64   `json:"l"`
	C         float64   `json:"c"`
	H         float64   `json:"h"`
	Timestamp time.Time `json:"timestamp"`
}

// Store persists history entries. Entries are passed most-recent-first.
type Store interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}

// List is a fixed-capacity, most-recent-first list of entries with no two
// entries sharing a hex value (compared case-insensitively).
//
// Safe for concurrent use.
type List struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry

	// now is replaceable for testing.
	now func() time.Time
}

// NewList returns an empty list. A capacity <= 0 uses DefaultCapacity.
func NewList(capacity int) *List {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &List{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity),
		now:      time.Now,
	}
}

// Capacity returns the maximum number of entries.
func (l *List) Capacity() int {
	return l.capacity
}

// Add inserts e at the front. An existing entry with the same hex is
// removed first, and the oldest entries beyond capacity are dropped. A
// missing ID or timestamp is filled in. Returns the stored entry.
func (l *List) Add(e Entry) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = l.now()
	}

	next := make([]Entry, 0, l.capacity)
	next = append(next, e)
	for _, existing := range l.entries {
		if strings.EqualFold(existing.Hex, e.Hex) {
			continue
		}
		if len(next) == l.capacity {
			break
		}
		next = append(next, existing)
	}
	l.entries = next
	return e
}

// Replace resets the list to entries, given most-recent-first, applying
// the same dedupe and capacity rules as Add.
func (l *List) Replace(entries []Entry) {
	l.mu.Lock()
	l.entries = l.entries[:0]
	l.mu.Unlock()

	for i := len(entries) - 1; i >= 0; i-- {
		l.Add(entries[i])
	}
}

// Entries returns a copy of the entries, most recent first.
func (l *List) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Clear removes every entry.
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
}

func (m *MemoryStore) Load(_ context.Context) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *MemoryStore) Save(_ context.Context, entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make([]Entry, len(entries))
	copy(m.entries, entries)
	return nil
}
