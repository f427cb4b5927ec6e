// Package memory implements the two-tier conversational memory of an NPC:
// a bounded short-term window that feeds prompt assembly, and an unbounded
// long-term log that receives whatever rotates out of the window.
package memory

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultShortTermCapacity is the short-term window size when none is given.
const DefaultShortTermCapacity = 15

// Entry is an immutable record of who said or did what, and when. Eviction
// moves entries between tiers but never alters one.
type Entry struct {
	ID        string
	Timestamp time.Time
	Source    string
	Event     string
}

// Ledger owns both memory tiers for a single NPC. It is not safe for
// concurrent use; each NPC instance has exactly one writer.
type Ledger struct {
	capacity  int
	shortTerm []Entry
	longTerm  []Entry
}

// NewLedger creates a Ledger with the given short-term capacity.
// Non-positive capacities fall back to DefaultShortTermCapacity.
func NewLedger(capacity int) *Ledger {
	if capacity <= 0 {
		capacity = DefaultShortTermCapacity
	}
	return &Ledger{
		capacity:  capacity,
		shortTerm: make([]Entry, 0, capacity+1),
	}
}

// Record appends an event observed now. See RecordAt.
func (l *Ledger) Record(source, event string) Entry {
	return l.RecordAt(source, event, time.Now())
}

// RecordAt appends an event to short-term memory. If the append pushes the
// window past capacity, the single oldest entry rotates into long-term memory,
// so len(short term) never exceeds capacity once the call returns.
func (l *Ledger) RecordAt(source, event string, at time.Time) Entry {
	e := Entry{
		ID:        uuid.NewString(),
		Timestamp: at,
		Source:    source,
		Event:     event,
	}
	l.shortTerm = append(l.shortTerm, e)
	if len(l.shortTerm) > l.capacity {
		oldest := l.shortTerm[0]
		l.shortTerm = l.shortTerm[1:]
		l.longTerm = append(l.longTerm, oldest)
	}
	return e
}

// Capacity returns the short-term window size.
func (l *Ledger) Capacity() int {
	return l.capacity
}

// ShortTermSnapshot returns a copy of the short-term window in chronological
// order. Mutating the returned slice does not affect the ledger.
func (l *Ledger) ShortTermSnapshot() []Entry {
	out := make([]Entry, len(l.shortTerm))
	copy(out, l.shortTerm)
	return out
}

// LongTermCount returns how many entries have rotated into long-term memory.
func (l *Ledger) LongTermCount() int {
	return len(l.longTerm)
}

// Transcript renders the short-term window as chronological "source: event"
// lines for prompt assembly. An empty window renders as a placeholder so the
// prompt section is never blank.
func (l *Ledger) Transcript() string {
	if len(l.shortTerm) == 0 {
		return "(no recent events)"
	}
	var b strings.Builder
	for i, e := range l.shortTerm {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", e.Source, e.Event)
	}
	return b.String()
}
