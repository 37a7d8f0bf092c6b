package note

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Record is a single note.
type Record struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Color     string `json:"color"`
	Pinned    bool   `json:"pinned"`
	CreatedAt int64  `json:"createdAt"` // milliseconds since epoch
}

// Palette is the fixed set of color tokens a note may carry.
// The first entry is the default for new notes.
var Palette = []string{
	"default",
	"red",
	"orange",
	"yellow",
	"green",
	"teal",
	"blue",
	"purple",
}

// DefaultColor is the color assigned when none is supplied.
func DefaultColor() string { return Palette[0] }

// ValidColor reports whether token is a known palette entry.
func ValidColor(token string) bool {
	for _, c := range Palette {
		if c == token {
			return true
		}
	}
	return false
}

// NextColor returns the palette entry after token, wrapping around.
// Unknown tokens restart at the first entry.
func NextColor(token string) string {
	for i, c := range Palette {
		if c == token {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}

// Fields is a partial set of note fields used to construct a Record.
// Zero values mean "use the default". It doubles as the lenient
// decode target for stored entries: unknown fields are ignored and
// missing ones are defaulted by New, which is what lets the store
// tolerate schema drift from earlier versions.
type Fields struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Color     string `json:"color"`
	Pinned    bool   `json:"pinned"`
	CreatedAt int64  `json:"createdAt"`
}

// New constructs a complete Record from partial fields. It is total:
// every missing field gets a default, and the result always has a
// non-empty id, a palette color, and a creation timestamp. Used both
// for fresh notes and for rehydrating stored entries (which keep
// their id and timestamp).
func New(f Fields) Record {
	r := Record{
		ID:        f.ID,
		Title:     f.Title,
		Content:   f.Content,
		Color:     f.Color,
		Pinned:    f.Pinned,
		CreatedAt: f.CreatedAt,
	}
	if r.ID == "" {
		r.ID = GenerateID()
	}
	if r.Color == "" {
		r.Color = DefaultColor()
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().UnixMilli()
	}
	return r
}

// GenerateID creates a new note ID with "nt-" prefix and 12 hex chars.
// Random bytes rather than timestamps, so notes created in the same
// millisecond cannot collide.
func GenerateID() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// a time-derived token so construction stays total.
		return "nt-" + hex.EncodeToString(timeBytes())
	}
	return "nt-" + hex.EncodeToString(b)
}

func timeBytes() []byte {
	n := time.Now().UnixNano()
	b := make([]byte, 6)
	for i := range b {
		b[i] = byte(n >> (8 * i))
	}
	return b
}
