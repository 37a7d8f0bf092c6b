//go:build !cgo

package storage

import (
	// Registers the pure-Go "sqlite" driver for cgo-less builds.
	_ "modernc.org/sqlite"
)

const (
	sqliteDriver = "sqlite"
	sqliteDSN    = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
)
