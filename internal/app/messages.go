package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RaKeShhhM/Notes-app/internal/note"
)

// AutoSaveTickMsg fires after the save debounce delay. ID identifies
// the generation; stale ticks are dropped.
type AutoSaveTickMsg struct {
	ID int
}

// SearchTickMsg fires after the search debounce delay.
type SearchTickMsg struct {
	ID int
}

// SavedMsg reports the outcome of a background save.
type SavedMsg struct {
	Err error
}

// ExternalChangeMsg is sent by the storage watcher when the database
// file changes on disk.
type ExternalChangeMsg struct{}

// ReloadedMsg carries the result of reading the collection back from
// storage.
type ReloadedMsg struct {
	Notes   []note.Record
	Changed bool
}

// ClearToastTickMsg hides the toast whose generation matches ID.
type ClearToastTickMsg struct {
	ID int
}

// EditorFinishedMsg reports that the external editor exited; Path is
// the temp file to read the edited content back from.
type EditorFinishedMsg struct {
	ID   string
	Path string
	Err  error
}

// saveCmd snapshots the collection and persists it off the update
// loop.
func (m *Model) saveCmd() tea.Cmd {
	snapshot := m.store.Snapshot()
	return func() tea.Msg {
		return SavedMsg{Err: m.gateway.Save(snapshot)}
	}
}

// reloadCmd reads the collection back from storage.
func (m *Model) reloadCmd(onlyIfChanged bool) tea.Cmd {
	return func() tea.Msg {
		if onlyIfChanged {
			notes, changed := m.gateway.LoadIfChanged()
			return ReloadedMsg{Notes: notes, Changed: changed}
		}
		return ReloadedMsg{Notes: m.gateway.Load(), Changed: true}
	}
}
