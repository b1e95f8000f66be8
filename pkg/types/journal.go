package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is a single timestamped journal line recording an inventory
// mutation. The ID is a UUID v7, generated when the entry is recorded.
type Entry struct {
	EntryID string
	At      time.Time
	Message string
}

// String renders the entry as "<timestamp>: <message>".
func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.At.Format(time.RFC3339), e.Message)
}

// Journal is an append-only in-memory sequence of entries. It is owned by
// the caller, shared with an Inventory via SetJournal, and never persisted.
type Journal struct {
	entries []Entry
}

// NewJournal returns an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Record appends a timestamped entry with the given message.
func (j *Journal) Record(message string) Entry {
	e := Entry{
		EntryID: uuid.Must(uuid.NewV7()).String(),
		At:      time.Now(),
		Message: message,
	}
	j.entries = append(j.entries, e)
	return e
}

// Entries returns a copy of all recorded entries in order.
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of recorded entries.
func (j *Journal) Len() int {
	return len(j.entries)
}
