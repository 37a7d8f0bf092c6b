// Package collection owns the in-memory ordered list of notes and the
// operations that mutate it. The slice order is the manual order: the
// order that gets persisted and restored, changed only by insertion,
// deletion, and explicit reorder. Display ordering (pinned first,
// newest first) is derived on demand and never stored.
package collection

import (
	"sort"
	"strings"
	"sync"

	"github.com/RaKeShhhM/Notes-app/internal/note"
)

// Store is the in-memory authority for the note collection. Mutations
// run in response to user gestures on the UI goroutine; the mutex
// exists because debounced persistence snapshots the collection from
// a timer goroutine.
type Store struct {
	mu    sync.RWMutex
	notes []note.Record
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Load replaces the collection with the given records, preserving
// their order as the manual order. Used once at startup and when the
// storage watcher reports an external write.
func (s *Store) Load(notes []note.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append([]note.Record(nil), notes...)
}

// Add constructs a note from the given fields and inserts it at the
// front of the manual order (newest-first insertion). Returns the new
// note's id. A generated id is retried if it collides with a live one.
func (s *Store) Add(f note.Fields) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := note.New(f)
	for s.indexLocked(r.ID) >= 0 {
		r.ID = note.GenerateID()
	}
	s.notes = append([]note.Record{r}, s.notes...)
	return r.ID
}

// Patch carries partial field changes for Update. Nil fields are left
// untouched.
type Patch struct {
	Title   *string
	Content *string
}

// Update applies a partial change to the note with the given id.
// Returns false (and changes nothing) if the id is absent.
func (s *Store) Update(id string, p Patch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	if p.Title != nil {
		s.notes[i].Title = *p.Title
	}
	if p.Content != nil {
		s.notes[i].Content = *p.Content
	}
	return true
}

// SetPinned sets the pin flag. No-op on unknown ids.
func (s *Store) SetPinned(id string, pinned bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.notes[i].Pinned = pinned
	return true
}

// SetColor sets the color token. Unknown ids and invalid tokens are
// no-ops.
func (s *Store) SetColor(id, color string) bool {
	if !note.ValidColor(color) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.notes[i].Color = color
	return true
}

// Remove deletes the note with the given id, preserving the relative
// order of the rest. No-op on unknown ids.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	return true
}

// Move reorders the manual order by dropping the note with id next to
// targetID (below it when after is true). Stale or self-targeted
// gestures leave the order unchanged.
func (s *Store) Move(id, targetID string, after bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = Reorder(s.notes, id, targetID, after)
}

// Get returns a copy of the note with the given id.
func (s *Store) Get(id string) (note.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return note.Record{}, false
	}
	return s.notes[i], true
}

// Len returns the number of notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Snapshot returns a copy of the collection in manual order. This is
// what the persistence gateway serializes.
func (s *Store) Snapshot() []note.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]note.Record(nil), s.notes...)
}

// VisibleOrder computes the display order: pinned notes first, each
// group most-recent-first by creation time, then filtered by query.
// Matching is a case-insensitive substring test over title and
// content; filtering happens after sorting and keeps relative order.
// The result is a copy, never the manual order.
func (s *Store) VisibleOrder(query string) []note.Record {
	s.mu.RLock()
	out := append([]note.Record(nil), s.notes...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Pinned != out[b].Pinned {
			return out[a].Pinned
		}
		return out[a].CreatedAt > out[b].CreatedAt
	})

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return out
	}
	filtered := out[:0]
	for _, r := range out {
		haystack := strings.ToLower(r.Title + " " + r.Content)
		if strings.Contains(haystack, q) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// indexLocked returns the manual-order index of id, or -1.
// Caller must hold the mutex.
func (s *Store) indexLocked(id string) int {
	return indexOf(s.notes, id)
}
