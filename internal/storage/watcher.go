package storage

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/RaKeShhhM/Notes-app/internal/debounce"
)

// watchDebounce coalesces the burst of fsnotify events a single
// SQLite commit produces (db, -wal, -shm) into one notification.
const watchDebounce = 100 * time.Millisecond

// Watch observes the database file at dbPath and calls onChange after
// another process writes it. It watches the parent directory — on
// macOS fsnotify reports events for files when watching the parent —
// and filters by filename. Concurrent instances are not coordinated
// beyond this: last write wins, and the watcher lets this instance
// pick the winner up instead of silently overwriting it.
func Watch(dbPath string, onChange func()) (io.Closer, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(dbPath)); err != nil {
		watcher.Close()
		return nil, err
	}

	base := filepath.Base(dbPath)
	coalesced := debounce.New(onChange, watchDebounce)

	go func() {
		defer coalesced.Stop()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				name := filepath.Base(event.Name)
				if name != base && !strings.HasPrefix(name, base+"-") {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				coalesced.Trigger()
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Watch errors are non-fatal; the next save still works.
			}
		}
	}()

	return watcher, nil
}
