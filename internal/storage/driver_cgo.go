//go:build cgo

package storage

import (
	// Registers the "sqlite3" driver.
	_ "github.com/mattn/go-sqlite3"
)

const (
	sqliteDriver = "sqlite3"
	sqliteDSN    = "?_busy_timeout=5000&_journal_mode=WAL"
)
