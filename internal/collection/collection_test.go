package collection

import (
	"fmt"
	"testing"

	"github.com/RaKeShhhM/Notes-app/internal/note"
)

func TestAdd_InsertsAtFront(t *testing.T) {
	s := New()
	first := s.Add(note.Fields{Title: "first"})
	second := s.Add(note.Fields{Title: "second"})

	snap := s.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("len = %d, want 2", len(snap))
	}
	if snap[0].ID != second || snap[1].ID != first {
		t.Errorf("manual order = %v, want newest first", ids(snap))
	}
}

func TestAdd_IDsAreUnique(t *testing.T) {
	s := New()
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := s.Add(note.Fields{})
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestUpdate(t *testing.T) {
	s := New()
	id := s.Add(note.Fields{Title: "old", Content: "body"})

	title := "new"
	if !s.Update(id, Patch{Title: &title}) {
		t.Fatal("Update on existing id should return true")
	}
	got, _ := s.Get(id)
	if got.Title != "new" || got.Content != "body" {
		t.Errorf("after patch: title=%q content=%q", got.Title, got.Content)
	}

	if s.Update("nt-missing", Patch{Title: &title}) {
		t.Error("Update on unknown id should be a no-op returning false")
	}
}

func TestSetPinnedAndSetColor(t *testing.T) {
	s := New()
	id := s.Add(note.Fields{})

	if !s.SetPinned(id, true) {
		t.Fatal("SetPinned failed on existing id")
	}
	if got, _ := s.Get(id); !got.Pinned {
		t.Error("pin flag not set")
	}

	if !s.SetColor(id, "blue") {
		t.Fatal("SetColor failed on valid token")
	}
	if got, _ := s.Get(id); got.Color != "blue" {
		t.Errorf("color = %q, want blue", got.Color)
	}

	if s.SetColor(id, "chartreuse") {
		t.Error("SetColor should reject tokens outside the palette")
	}
	if s.SetPinned("nt-missing", true) {
		t.Error("SetPinned on unknown id should be a no-op")
	}
}

func TestRemove(t *testing.T) {
	s := New()
	a := s.Add(note.Fields{Title: "a"})
	b := s.Add(note.Fields{Title: "b"})
	c := s.Add(note.Fields{Title: "c"})

	if !s.Remove(b) {
		t.Fatal("Remove on existing id should return true")
	}
	snap := s.Snapshot()
	if len(snap) != 2 || snap[0].ID != c || snap[1].ID != a {
		t.Errorf("after remove: %v, want [%s %s]", ids(snap), c, a)
	}
	if _, ok := s.Get(b); ok {
		t.Error("removed id still present")
	}

	if s.Remove("nt-missing") {
		t.Error("Remove on unknown id should be a no-op")
	}
}

func TestMove(t *testing.T) {
	s := New()
	s.Load(seq("A", "B", "C", "D"))

	s.Move("A", "C", true)
	assertOrder(t, s.Snapshot(), "B", "C", "A", "D")

	// Stale gesture: target gone.
	s.Move("A", "Z", false)
	assertOrder(t, s.Snapshot(), "B", "C", "A", "D")
}

func TestVisibleOrder_PinnedFirstThenRecency(t *testing.T) {
	s := New()
	s.Load([]note.Record{
		{ID: "n1", CreatedAt: 100},
		{ID: "p1", CreatedAt: 50, Pinned: true},
		{ID: "n2", CreatedAt: 300},
		{ID: "p2", CreatedAt: 200, Pinned: true},
	})

	got := s.VisibleOrder("")
	assertOrder(t, got, "p2", "p1", "n2", "n1")
}

func TestVisibleOrder_DoesNotTouchManualOrder(t *testing.T) {
	s := New()
	s.Load([]note.Record{
		{ID: "a", CreatedAt: 1},
		{ID: "b", CreatedAt: 2, Pinned: true},
	})
	_ = s.VisibleOrder("")
	assertOrder(t, s.Snapshot(), "a", "b")
}

func TestVisibleOrder_SearchFilter(t *testing.T) {
	s := New()
	s.Load([]note.Record{
		{ID: "a", Title: "Groceries", Content: "milk eggs", CreatedAt: 3},
		{ID: "b", Title: "Meeting", Content: "standup at 10", CreatedAt: 2},
		{ID: "c", Title: "", Content: "buy MILK for cereal", CreatedAt: 1},
	})

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"a", "b", "c"}},
		{"milk", []string{"a", "c"}},
		{"  MILK  ", []string{"a", "c"}}, // trimmed, case-insensitive
		{"standup", []string{"b"}},
		{"zebra", nil},
	}
	for _, tt := range tests {
		got := s.VisibleOrder(tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("VisibleOrder(%q) = %v, want %v", tt.query, ids(got), tt.want)
			continue
		}
		for i := range tt.want {
			if got[i].ID != tt.want[i] {
				t.Errorf("VisibleOrder(%q) = %v, want %v", tt.query, ids(got), tt.want)
				break
			}
		}
	}
}

func TestVisibleOrder_QueryMatchesTitleContentBoundary(t *testing.T) {
	s := New()
	s.Load([]note.Record{
		{ID: "a", Title: "foo", Content: "bar", CreatedAt: 1},
	})
	// title and content are joined with a space; "foo bar" matches,
	// "foobar" does not.
	if got := s.VisibleOrder("foo bar"); len(got) != 1 {
		t.Error(`query "foo bar" should match across the title/content join`)
	}
	if got := s.VisibleOrder("foobar"); len(got) != 0 {
		t.Error(`query "foobar" should not match`)
	}
}

func TestVisibleOrder_Empty(t *testing.T) {
	s := New()
	if got := s.VisibleOrder(""); len(got) != 0 {
		t.Errorf("empty collection should yield empty sequence, got %d", len(got))
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := New()
	s.Add(note.Fields{Title: "original"})

	snap := s.Snapshot()
	snap[0].Title = "mutated"

	fresh := s.Snapshot()
	if fresh[0].Title != "original" {
		t.Error("mutating a snapshot must not affect the store")
	}
}

func TestRoundTripThroughLoad(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s.Add(note.Fields{Title: fmt.Sprintf("note %d", i)})
	}
	before := s.Snapshot()

	s2 := New()
	s2.Load(before)
	after := s2.Snapshot()

	if len(after) != len(before) {
		t.Fatalf("len = %d, want %d", len(after), len(before))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("record %d differs after reload", i)
		}
	}
}
