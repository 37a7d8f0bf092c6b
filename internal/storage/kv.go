package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// KV is a local SQLite-backed key/value store. Each key holds one
// opaque value; Set replaces the whole value in a single statement,
// so readers never observe a partial write.
type KV struct {
	db *sql.DB
}

// OpenKV opens (creating if needed) the key/value database at path.
func OpenKV(path string) (*KV, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	db, err := sql.Open(sqliteDriver, path+sqliteDSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	kv := &KV{db: db}
	if err := kv.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return kv, nil
}

func (kv *KV) initSchema() error {
	schema := `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL
);
`
	_, err := kv.db.Exec(schema)
	return err
}

// Get returns the value under key. The second result is false when
// the key is absent.
func (kv *KV) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := kv.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query key %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes value under key, replacing any previous value.
func (kv *KV) Set(key string, value []byte) error {
	_, err := kv.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Absent keys are not an error.
func (kv *KV) Delete(key string) error {
	if _, err := kv.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (kv *KV) Close() error {
	if kv.db != nil {
		return kv.db.Close()
	}
	return nil
}
