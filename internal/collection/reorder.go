package collection

import (
	"slices"

	"github.com/RaKeShhhM/Notes-app/internal/note"
)

// Reorder computes a new manual order after dragging the note with
// draggedID onto the note with targetID. When after is true the
// dragged note lands below the target, otherwise above it.
//
// Dropping a note onto itself, or referencing an id that is no longer
// in seq (stale gesture, e.g. the target was deleted mid-drag), is a
// no-op: the input slice is returned unchanged.
//
// The insertion index is derived against the post-removal sequence:
// take seq without the dragged note, find the target there, and
// insert at that index (before) or one past it (after).
func Reorder(seq []note.Record, draggedID, targetID string, after bool) []note.Record {
	if draggedID == targetID {
		return seq
	}
	draggedIdx := indexOf(seq, draggedID)
	targetIdx := indexOf(seq, targetID)
	if draggedIdx < 0 || targetIdx < 0 {
		return seq
	}

	dragged := seq[draggedIdx]
	removed := make([]note.Record, 0, len(seq)-1)
	removed = append(removed, seq[:draggedIdx]...)
	removed = append(removed, seq[draggedIdx+1:]...)

	idx := indexOf(removed, targetID)
	if after {
		idx++
	}
	return slices.Insert(removed, idx, dragged)
}

func indexOf(seq []note.Record, id string) int {
	for i := range seq {
		if seq[i].ID == id {
			return i
		}
	}
	return -1
}

// DragPhase tracks where a drag gesture currently is.
type DragPhase int

const (
	DragIdle DragPhase = iota
	Dragging
	DragHovering
)

// Drag is the state machine for one drag-and-drop gesture. The
// renderer feeds it press/motion/release events; it never mutates the
// collection itself — on a completed drop it reports the ids and the
// after flag for the caller to hand to Reorder.
type Drag struct {
	phase    DragPhase
	sourceID string
	hoverID  string
	after    bool
}

// Phase returns the current gesture phase.
func (d *Drag) Phase() DragPhase { return d.phase }

// SourceID returns the id picked up at gesture start, or "".
func (d *Drag) SourceID() string { return d.sourceID }

// HoverID returns the id currently hovered as a drop target, or "".
func (d *Drag) HoverID() string { return d.hoverID }

// HoverAfter reports whether the pending drop lands after the hovered
// target.
func (d *Drag) HoverAfter() bool { return d.after }

// Start begins a gesture over the given note.
func (d *Drag) Start(id string) {
	if id == "" {
		return
	}
	d.phase = Dragging
	d.sourceID = id
	d.hoverID = ""
	d.after = false
}

// Hover records the current drop target. after is the caller's
// geometry decision (pointer below the target's vertical midpoint).
// Hovering the source itself is visual-only and clears the target.
func (d *Drag) Hover(id string, after bool) {
	if d.phase == DragIdle {
		return
	}
	if id == "" || id == d.sourceID {
		d.phase = Dragging
		d.hoverID = ""
		return
	}
	d.phase = DragHovering
	d.hoverID = id
	d.after = after
}

// Drop completes the gesture. It returns the drop parameters and true
// when a reorder should run; releasing outside a valid target
// abandons the gesture with ok=false.
func (d *Drag) Drop() (sourceID, targetID string, after bool, ok bool) {
	sourceID, targetID, after = d.sourceID, d.hoverID, d.after
	ok = d.phase == DragHovering && targetID != ""
	d.Cancel()
	return
}

// Cancel abandons the gesture and returns to idle with no mutation.
func (d *Drag) Cancel() {
	d.phase = DragIdle
	d.sourceID = ""
	d.hoverID = ""
	d.after = false
}
