package collection

import (
	"testing"

	"github.com/RaKeShhhM/Notes-app/internal/note"
)

func seq(ids ...string) []note.Record {
	out := make([]note.Record, len(ids))
	for i, id := range ids {
		out[i] = note.Record{ID: id}
	}
	return out
}

func ids(notes []note.Record) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func assertOrder(t *testing.T, got []note.Record, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", ids(got), want)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("order = %v, want %v", ids(got), want)
		}
	}
}

func TestReorder_DragForwardAfter(t *testing.T) {
	got := Reorder(seq("A", "B", "C", "D"), "A", "C", true)
	assertOrder(t, got, "B", "C", "A", "D")
}

func TestReorder_DragBackwardBefore(t *testing.T) {
	got := Reorder(seq("A", "B", "C", "D"), "D", "B", false)
	assertOrder(t, got, "A", "D", "B", "C")
}

func TestReorder_DragForwardBefore(t *testing.T) {
	got := Reorder(seq("A", "B", "C", "D"), "A", "C", false)
	assertOrder(t, got, "B", "A", "C", "D")
}

func TestReorder_DragBackwardAfter(t *testing.T) {
	got := Reorder(seq("A", "B", "C", "D"), "D", "B", true)
	assertOrder(t, got, "A", "B", "D", "C")
}

func TestReorder_AdjacentSwap(t *testing.T) {
	got := Reorder(seq("A", "B"), "A", "B", true)
	assertOrder(t, got, "B", "A")

	got = Reorder(seq("A", "B"), "B", "A", false)
	assertOrder(t, got, "B", "A")
}

func TestReorder_SelfTargetIsNoop(t *testing.T) {
	in := seq("A", "B", "C")
	for _, after := range []bool{true, false} {
		got := Reorder(in, "B", "B", after)
		assertOrder(t, got, "A", "B", "C")
	}
}

func TestReorder_UnknownIDsAreNoops(t *testing.T) {
	in := seq("A", "B", "C")
	for _, after := range []bool{true, false} {
		assertOrder(t, Reorder(in, "Z", "B", after), "A", "B", "C")
		assertOrder(t, Reorder(in, "A", "Z", after), "A", "B", "C")
	}
}

func TestReorder_ToEnds(t *testing.T) {
	got := Reorder(seq("A", "B", "C"), "C", "A", false)
	assertOrder(t, got, "C", "A", "B")

	got = Reorder(seq("A", "B", "C"), "A", "C", true)
	assertOrder(t, got, "B", "C", "A")
}

func TestDrag_FullGesture(t *testing.T) {
	var d Drag

	if d.Phase() != DragIdle {
		t.Fatalf("initial phase = %v, want idle", d.Phase())
	}

	d.Start("A")
	if d.Phase() != Dragging || d.SourceID() != "A" {
		t.Fatalf("after Start: phase=%v source=%q", d.Phase(), d.SourceID())
	}

	d.Hover("C", true)
	if d.Phase() != DragHovering || d.HoverID() != "C" {
		t.Fatalf("after Hover: phase=%v hover=%q", d.Phase(), d.HoverID())
	}

	src, tgt, after, ok := d.Drop()
	if !ok || src != "A" || tgt != "C" || !after {
		t.Fatalf("Drop = (%q, %q, %v, %v), want (A, C, true, true)", src, tgt, after, ok)
	}
	if d.Phase() != DragIdle {
		t.Errorf("phase after Drop = %v, want idle", d.Phase())
	}
}

func TestDrag_ReleaseOutsideTargetAbandons(t *testing.T) {
	var d Drag
	d.Start("A")

	_, _, _, ok := d.Drop()
	if ok {
		t.Error("Drop without a hover target should abandon the gesture")
	}
	if d.Phase() != DragIdle {
		t.Errorf("phase = %v, want idle", d.Phase())
	}
}

func TestDrag_HoverOverSourceClearsTarget(t *testing.T) {
	var d Drag
	d.Start("A")
	d.Hover("B", false)
	d.Hover("A", true)

	if d.Phase() != Dragging || d.HoverID() != "" {
		t.Fatalf("hovering the source: phase=%v hover=%q, want dragging with no target", d.Phase(), d.HoverID())
	}
}

func TestDrag_CancelResets(t *testing.T) {
	var d Drag
	d.Start("A")
	d.Hover("B", true)
	d.Cancel()

	if d.Phase() != DragIdle || d.SourceID() != "" || d.HoverID() != "" {
		t.Error("Cancel should return the gesture to idle with no state")
	}
}
