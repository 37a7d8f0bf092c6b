package storage

import (
	"testing"

	"github.com/RaKeShhhM/Notes-app/internal/note"
)

func testGateway(t *testing.T) *Gateway {
	t.Helper()
	return NewGateway(openTestKV(t), nil)
}

func sampleNotes() []note.Record {
	return []note.Record{
		note.New(note.Fields{Title: "pinned one", Pinned: true, CreatedAt: 300}),
		note.New(note.Fields{Title: "groceries", Content: "milk", Color: "teal", CreatedAt: 200}),
		note.New(note.Fields{Content: "untitled body", CreatedAt: 100}),
	}
}

func TestRoundTrip(t *testing.T) {
	g := testGateway(t)
	in := sampleNotes()

	if err := g.Save(in); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	out := g.Load()

	if len(out) != len(in) {
		t.Fatalf("Load() returned %d notes, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("note %d: got %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestLoad_MissingKey(t *testing.T) {
	g := testGateway(t)

	if got := g.Load(); len(got) != 0 {
		t.Errorf("Load() on empty store = %d notes, want 0", len(got))
	}
}

func TestLoad_FailOpenOnCorruptData(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"parse failure", `{"truncated`},
		{"non-array top level", `{"notes": []}`},
		{"wrong element type", `[1, 2, 3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := openTestKV(t)
			if err := kv.Set(collectionKey, []byte(tt.payload)); err != nil {
				t.Fatal(err)
			}
			g := NewGateway(kv, nil)

			if got := g.Load(); len(got) != 0 {
				t.Errorf("Load() = %d notes, want 0 (fail-open)", len(got))
			}
		})
	}
}

func TestLoad_RevalidatesLegacyEntries(t *testing.T) {
	kv := openTestKV(t)
	// A v0-era record: no color, no pinned, an extra field, and one
	// entry with no id at all.
	payload := `[
		{"id":"nt-aaaa","title":"old","content":"body","legacyField":7},
		{"title":"no id"}
	]`
	if err := kv.Set(collectionKey, []byte(payload)); err != nil {
		t.Fatal(err)
	}
	g := NewGateway(kv, nil)

	got := g.Load()
	if len(got) != 2 {
		t.Fatalf("Load() = %d notes, want 2", len(got))
	}
	if got[0].ID != "nt-aaaa" || got[0].Color != note.DefaultColor() {
		t.Errorf("legacy entry not revalidated: %+v", got[0])
	}
	if got[1].ID == "" || got[1].CreatedAt == 0 {
		t.Errorf("entry without id/timestamp not defaulted: %+v", got[1])
	}
}

func TestSave_PreservesManualOrder(t *testing.T) {
	g := testGateway(t)
	in := sampleNotes()

	if err := g.Save(in); err != nil {
		t.Fatal(err)
	}
	out := g.Load()
	for i := range in {
		if out[i].ID != in[i].ID {
			t.Fatalf("order changed through round-trip: %v vs %v", out[i].ID, in[i].ID)
		}
	}
}

func TestSave_SkipsUnchangedPayload(t *testing.T) {
	kv := openTestKV(t)
	g := NewGateway(kv, nil)
	in := sampleNotes()

	if err := g.Save(in); err != nil {
		t.Fatal(err)
	}
	// A second identical save must not dirty the store: the watcher
	// path sees no change either way.
	if err := g.Save(in); err != nil {
		t.Fatal(err)
	}
	if _, changed := g.LoadIfChanged(); changed {
		t.Error("LoadIfChanged() reported a change after identical saves")
	}
}

func TestLoadIfChanged(t *testing.T) {
	kv := openTestKV(t)
	g := NewGateway(kv, nil)

	if err := g.Save(sampleNotes()); err != nil {
		t.Fatal(err)
	}
	if _, changed := g.LoadIfChanged(); changed {
		t.Error("own write should not register as an external change")
	}

	// Simulate another instance writing a different collection.
	other := NewGateway(kv, nil)
	if err := other.Save([]note.Record{note.New(note.Fields{Title: "from other tab"})}); err != nil {
		t.Fatal(err)
	}

	got, changed := g.LoadIfChanged()
	if !changed {
		t.Fatal("external write not detected")
	}
	if len(got) != 1 || got[0].Title != "from other tab" {
		t.Errorf("reloaded collection = %+v", got)
	}

	// And it settles: no further change reported.
	if _, changed := g.LoadIfChanged(); changed {
		t.Error("LoadIfChanged() should settle after a reload")
	}
}

func TestSave_NilCollection(t *testing.T) {
	g := testGateway(t)

	if err := g.Save(nil); err != nil {
		t.Fatalf("Save(nil) failed: %v", err)
	}
	if got := g.Load(); len(got) != 0 {
		t.Errorf("Load() after Save(nil) = %d notes, want 0", len(got))
	}
}
