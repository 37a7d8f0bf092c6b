// Package storage persists the note collection to a local SQLite
// key/value store. The full collection is one JSON array under a
// fixed key; loading is fail-open — missing or corrupt data yields an
// empty collection, never an error, because notes are non-critical
// user data and crashing on load would be worse than starting empty.
package storage

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/RaKeShhhM/Notes-app/internal/note"
)

// collectionKey is the namespace key the collection lives under.
const collectionKey = "notes"

// Gateway serializes the note collection in and out of a KV store.
type Gateway struct {
	mu     sync.Mutex
	kv     *KV
	logger *slog.Logger

	// Fingerprint of the last payload written or read. Debounced
	// saves skip the write when nothing changed, and external-change
	// reloads ignore our own writes.
	lastHash uint64
}

// NewGateway wraps the given KV store. A nil logger discards.
func NewGateway(kv *KV, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Gateway{kv: kv, logger: logger}
}

// Save serializes the collection, in manual order, under the
// collection key. The write is atomic from a reader's perspective
// (single-statement upsert). Unchanged payloads are skipped.
func (g *Gateway) Save(notes []note.Record) error {
	if notes == nil {
		notes = []note.Record{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	h := xxhash.Sum64(data)
	if h == g.lastHash {
		return nil
	}
	if err := g.kv.Set(collectionKey, data); err != nil {
		return err
	}
	g.lastHash = h
	return nil
}

// Load reads and deserializes the collection. Missing key, parse
// failure, or a non-array top level all yield an empty collection.
// Every entry is re-validated through the note factory, so stored
// records with missing or legacy fields come back well-formed.
func (g *Gateway) Load() []note.Record {
	g.mu.Lock()
	defer g.mu.Unlock()

	data, ok, err := g.readRaw()
	if err != nil || !ok {
		return nil
	}
	g.lastHash = xxhash.Sum64(data)
	return g.decode(data)
}

// LoadIfChanged reads the collection only if the stored payload
// differs from what this gateway last wrote or read. Used by the
// external-change watcher so our own saves do not trigger reloads.
func (g *Gateway) LoadIfChanged() ([]note.Record, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	data, ok, err := g.readRaw()
	if err != nil || !ok {
		return nil, false
	}
	h := xxhash.Sum64(data)
	if h == g.lastHash {
		return nil, false
	}
	g.lastHash = h
	return g.decode(data), true
}

func (g *Gateway) readRaw() ([]byte, bool, error) {
	data, ok, err := g.kv.Get(collectionKey)
	if err != nil {
		g.logger.Warn("notes: read failed, starting empty", "error", err)
		return nil, false, err
	}
	return data, ok, nil
}

// decode is the fail-open parse: any malformed payload decodes to an
// empty collection.
func (g *Gateway) decode(data []byte) []note.Record {
	var stored []note.Fields
	if err := json.Unmarshal(data, &stored); err != nil {
		g.logger.Warn("notes: malformed stored collection, starting empty", "error", err)
		return nil
	}

	notes := make([]note.Record, 0, len(stored))
	for _, f := range stored {
		notes = append(notes, note.New(f))
	}
	return notes
}
