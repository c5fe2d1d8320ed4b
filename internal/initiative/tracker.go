// Package initiative orders encounter participants into a turn rotation.
package initiative

import "sort"

// Entry is one actor's place in the rotation.
type Entry struct {
	ActorID int
	Score   int
}

// Tracker is an ordered rotation of actors with a cursor on the one whose
// turn it is. Entries are sorted by descending score; among equal scores
// the earliest registered comes first. Entries are never removed.
type Tracker struct {
	entries []Entry
	cursor  int
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Initialize replaces the rotation with entries, ordered by score with ties
// kept in the given order, and puts the cursor on the first entry.
func (t *Tracker) Initialize(entries []Entry) {
	t.entries = append(t.entries[:0], entries...)
	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].Score > t.entries[j].Score
	})
	t.cursor = 0
}

// Add inserts an actor after every entry with a score at least as high.
// The cursor keeps pointing at the same actor.
func (t *Tracker) Add(actorID, score int) {
	idx := len(t.entries)
	for i, e := range t.entries {
		if score > e.Score {
			idx = i
			break
		}
	}

	t.entries = append(t.entries, Entry{})
	copy(t.entries[idx+1:], t.entries[idx:])
	t.entries[idx] = Entry{ActorID: actorID, Score: score}

	if len(t.entries) > 1 && idx <= t.cursor {
		t.cursor++
	}
}

// Advance moves the cursor to the next entry, wrapping around. It panics on
// an empty rotation.
func (t *Tracker) Advance() {
	if len(t.entries) == 0 {
		panic("initiative: advance on empty rotation")
	}
	t.cursor = (t.cursor + 1) % len(t.entries)
}

// Current returns the actor whose turn it is.
func (t *Tracker) Current() (int, bool) {
	if t.cursor >= len(t.entries) {
		return 0, false
	}
	return t.entries[t.cursor].ActorID, true
}

// Cursor returns the index of the current entry.
func (t *Tracker) Cursor() int {
	return t.cursor
}

// Entries returns a copy of the rotation in turn order.
func (t *Tracker) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}
