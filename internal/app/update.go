package app

import (
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RaKeShhhM/Notes-app/internal/collection"
	"github.com/RaKeShhhM/Notes-app/internal/msg"
	"github.com/RaKeShhhM/Notes-app/internal/note"
	"github.com/RaKeShhhM/Notes-app/internal/state"
	"github.com/RaKeShhhM/Notes-app/internal/styles"
)

// Update implements tea.Model.
func (m *Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.updateEditorDimensions()
		return m, nil

	case AutoSaveTickMsg:
		// Only save if this tick matches the current generation
		if message.ID == m.autoSaveID && m.dirty {
			m.dirty = false
			return m, m.saveCmd()
		}
		return m, nil

	case SearchTickMsg:
		if message.ID == m.searchID {
			m.query = m.searchInput.Value()
			m.cursor = 0
			m.scrollOff = 0
			m.refreshVisible()
		}
		return m, nil

	case SavedMsg:
		if message.Err != nil {
			m.logger.Error("notes: save failed", "error", message.Err)
			return m, msg.ShowError("save failed: "+message.Err.Error(), toastDuration)
		}
		return m, nil

	case ExternalChangeMsg:
		return m, m.reloadCmd(true)

	case ReloadedMsg:
		if !message.Changed {
			return m, nil
		}
		// Keep selection on the same note across the reload when it
		// survives.
		selID := ""
		if n, ok := m.selected(); ok {
			selID = n.ID
		}
		m.store.Load(message.Notes)
		m.refreshVisible()
		if selID != "" {
			m.selectByID(selID)
		}
		if m.editingID != "" {
			if _, ok := m.store.Get(m.editingID); !ok {
				m.closeEditor()
			}
		}
		return m, nil

	case msg.ToastMsg:
		m.toast = message.Message
		m.toastIsError = message.IsError
		m.toastID++
		id := m.toastID
		d := message.Duration
		if d <= 0 {
			d = toastDuration
		}
		return m, tea.Tick(d, func(time.Time) tea.Msg {
			return ClearToastTickMsg{ID: id}
		})

	case ClearToastTickMsg:
		if message.ID == m.toastID {
			m.toast = ""
		}
		return m, nil

	case EditorFinishedMsg:
		return m, m.readBackExternalEdit(message)

	case tea.KeyMsg:
		return m.handleKey(message)

	case tea.MouseMsg:
		return m.handleMouse(message)
	}

	// Pass through other messages for cursor blink.
	return m, m.updateFocusedInput(message)
}

// updateFocusedInput forwards a message to whichever text widget has
// focus.
func (m *Model) updateFocusedInput(message tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.searchMode {
		m.searchInput, cmd = m.searchInput.Update(message)
		cmds = append(cmds, cmd)
	}
	if m.activePane == PaneEditor && m.editingID != "" {
		m.titleInput, cmd = m.titleInput.Update(message)
		cmds = append(cmds, cmd)
		m.contentArea, cmd = m.contentArea.Update(message)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// handleKey processes keyboard input.
func (m *Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := message.String()

	// Global bindings win everywhere (ctrl+c).
	if m.keys.Lookup("global", keyStr) == "quit" {
		return m.quit()
	}

	if m.confirmDelete {
		return m.handleConfirmKey(keyStr)
	}
	if m.searchMode {
		return m.handleSearchKey(message)
	}
	if m.activePane == PaneEditor && m.editingID != "" {
		return m.handleEditorKey(message)
	}
	return m.handleListKey(message)
}

// handleConfirmKey processes input while the delete confirm modal is
// open.
func (m *Model) handleConfirmKey(keyStr string) (tea.Model, tea.Cmd) {
	switch m.keys.Lookup("confirm", keyStr) {
	case "confirm":
		id, title := m.confirmID, m.confirmTitle
		m.confirmDelete = false
		m.confirmID = ""
		m.confirmTitle = ""
		if m.editingID == id {
			m.closeEditor()
		}
		m.store.Remove(id)
		m.refreshVisible()
		return m, tea.Batch(
			m.markDirty(),
			msg.ShowToast("Deleted "+quoteTitle(title), toastDuration),
		)
	case "cancel":
		m.confirmDelete = false
		m.confirmID = ""
		m.confirmTitle = ""
	}
	return m, nil
}

// handleSearchKey processes input while the search bar is focused.
func (m *Model) handleSearchKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := message.String()

	switch m.keys.Lookup("search", keyStr) {
	case "cancel":
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.query = ""
		m.searchID++
		m.cursor = 0
		m.scrollOff = 0
		m.refreshVisible()
		return m, nil
	case "confirm":
		// Keep the query applied and return focus to the list.
		m.searchMode = false
		m.searchInput.Blur()
		m.query = m.searchInput.Value()
		m.searchID++
		m.refreshVisible()
		return m, nil
	}

	// Arrow keys navigate results without leaving the input.
	switch keyStr {
	case "down", "ctrl+n":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(message)

	// Debounce the filter so each keystroke does not rebuild the list.
	m.searchID++
	id := m.searchID
	tick := tea.Tick(m.cfg.Notes.SearchDelay, func(time.Time) tea.Msg {
		return SearchTickMsg{ID: id}
	})
	return m, tea.Batch(cmd, tick)
}

// handleEditorKey processes input while the editor pane is focused.
func (m *Model) handleEditorKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := message.String()

	switch m.keys.Lookup("editor", keyStr) {
	case "back", "switch-pane":
		m.activePane = PaneList
		m.titleInput.Blur()
		m.contentArea.Blur()
		return m, nil
	}

	// Tab between title and content within the editor.
	if keyStr == "down" && m.titleInput.Focused() {
		m.titleInput.Blur()
		return m, m.contentArea.Focus()
	}
	if keyStr == "enter" && m.titleInput.Focused() {
		m.titleInput.Blur()
		return m, m.contentArea.Focus()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	before := m.titleInput.Value() + "\x00" + m.contentArea.Value()
	m.titleInput, cmd = m.titleInput.Update(message)
	cmds = append(cmds, cmd)
	m.contentArea, cmd = m.contentArea.Update(message)
	cmds = append(cmds, cmd)

	if m.titleInput.Value()+"\x00"+m.contentArea.Value() != before {
		title := m.titleInput.Value()
		content := m.contentArea.Value()
		m.store.Update(m.editingID, collection.Patch{Title: &title, Content: &content})
		m.refreshVisible()
		cmds = append(cmds, m.markDirty())
	}
	return m, tea.Batch(cmds...)
}

// handleListKey processes input while the list pane is focused.
func (m *Model) handleListKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := message.String()

	switch m.keys.Lookup("list", keyStr) {
	case "quit":
		return m.quit()

	case "cursor-down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "cursor-up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "cursor-top":
		m.cursor = 0
		m.scrollOff = 0
	case "cursor-bottom":
		m.cursor = len(m.visible) - 1

	case "move-note-down":
		return m, m.moveSelected(true)
	case "move-note-up":
		return m, m.moveSelected(false)

	case "new-note":
		id := m.store.Add(note.Fields{})
		m.query = ""
		m.searchInput.SetValue("")
		m.refreshVisible()
		m.selectByID(id)
		return m, tea.Batch(m.markDirty(), m.openEditor(id))

	case "edit-note":
		if n, ok := m.selected(); ok {
			return m, m.openEditor(n.ID)
		}

	case "delete-note":
		if n, ok := m.selected(); ok {
			m.confirmDelete = true
			m.confirmID = n.ID
			m.confirmTitle = n.Title
		}

	case "toggle-pin":
		if n, ok := m.selected(); ok {
			m.store.SetPinned(n.ID, !n.Pinned)
			m.refreshVisible()
			m.selectByID(n.ID)
			return m, m.markDirty()
		}

	case "cycle-color":
		if n, ok := m.selected(); ok {
			m.store.SetColor(n.ID, note.NextColor(n.Color))
			m.refreshVisible()
			return m, m.markDirty()
		}

	case "yank-note":
		if n, ok := m.selected(); ok {
			if err := clipboard.WriteAll(n.Content); err != nil {
				return m, msg.ShowError("clipboard: "+err.Error(), toastDuration)
			}
			return m, msg.ShowToast("Copied note content", toastDuration)
		}

	case "yank-title":
		if n, ok := m.selected(); ok {
			if err := clipboard.WriteAll(n.Title); err != nil {
				return m, msg.ShowError("clipboard: "+err.Error(), toastDuration)
			}
			return m, msg.ShowToast("Copied title", toastDuration)
		}

	case "open-external":
		if n, ok := m.selected(); ok {
			return m, m.openExternalEditor(n)
		}

	case "reload":
		return m, m.reloadCmd(false)

	case "toggle-theme":
		next := styles.NextTheme(styles.GetCurrentThemeName())
		styles.ApplyThemeWithOverrides(next, m.cfg.UI.Theme.Overrides)
		if err := state.SetTheme(next); err != nil {
			m.logger.Warn("notes: persisting theme failed", "error", err)
		}
		return m, msg.ShowToast("Theme: "+next, toastDuration)

	case "toggle-wrap":
		m.wrapEnabled = !m.wrapEnabled
		if err := state.SetLineWrap(m.wrapEnabled); err != nil {
			m.logger.Warn("notes: persisting wrap failed", "error", err)
		}

	case "search":
		m.searchMode = true
		m.searchInput.SetValue(m.query)
		return m, m.searchInput.Focus()

	case "clear-search":
		if m.query != "" {
			m.query = ""
			m.searchInput.SetValue("")
			m.cursor = 0
			m.scrollOff = 0
			m.refreshVisible()
		}

	case "switch-pane":
		if m.editingID != "" {
			m.activePane = PaneEditor
			return m, m.contentArea.Focus()
		}
		if n, ok := m.selected(); ok {
			return m, m.openEditor(n.ID)
		}
	}

	return m, nil
}

// moveSelected shifts the selected note one step in the manual order.
// Disabled while a search filter is active, since the visible
// neighbors would not be the manual-order neighbors.
func (m *Model) moveSelected(down bool) tea.Cmd {
	if m.query != "" {
		return msg.ShowError("Clear search before reordering", toastDuration)
	}
	n, ok := m.selected()
	if !ok {
		return nil
	}
	targetIdx := m.cursor - 1
	if down {
		targetIdx = m.cursor + 1
	}
	if targetIdx < 0 || targetIdx >= len(m.visible) {
		return nil
	}
	m.store.Move(n.ID, m.visible[targetIdx].ID, down)
	m.refreshVisible()
	m.selectByID(n.ID)
	return m.markDirty()
}

// handleMouse processes mouse input: click to select, wheel to scroll,
// press-drag-release to reorder.
func (m *Model) handleMouse(message tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch message.Action {
	case tea.MouseActionPress:
		if message.Button == tea.MouseButtonWheelUp {
			if m.scrollOff > 0 {
				m.scrollOff--
			}
			return m, nil
		}
		if message.Button == tea.MouseButtonWheelDown {
			if m.scrollOff < len(m.visible)-1 {
				m.scrollOff++
			}
			return m, nil
		}
		if message.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if idx, ok := m.rowAt(message.X, message.Y); ok {
			m.cursor = idx
			m.activePane = PaneList
			m.titleInput.Blur()
			m.contentArea.Blur()
			if m.query == "" {
				m.drag.Start(m.visible[idx].ID)
			}
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.drag.Phase() == collection.DragIdle {
			return m, nil
		}
		if idx, ok := m.rowAt(message.X, message.Y); ok {
			// Rows are one cell tall, so "below the midpoint" is not
			// observable; dropping past the source reads as "after"
			// and dropping before it as "before".
			after := idx > m.visibleIndex(m.drag.SourceID())
			m.drag.Hover(m.visible[idx].ID, after)
		} else {
			m.drag.Hover("", false)
		}
		return m, nil

	case tea.MouseActionRelease:
		if message.Button != tea.MouseButtonLeft {
			return m, nil
		}
		src, tgt, after, ok := m.drag.Drop()
		if !ok {
			return m, nil
		}
		m.store.Move(src, tgt, after)
		m.refreshVisible()
		m.selectByID(src)
		return m, m.markDirty()
	}

	return m, nil
}

// rowAt maps terminal coordinates to a visible list index.
func (m *Model) rowAt(x, y int) (int, bool) {
	if x >= m.listWidth {
		return 0, false
	}
	idx := y - m.rowTop + m.scrollOff
	if y < m.rowTop || idx < 0 || idx >= m.scrollOff+m.rowCount || idx >= len(m.visible) {
		return 0, false
	}
	return idx, true
}

// visibleIndex returns the display index of a note id, or -1.
func (m *Model) visibleIndex(id string) int {
	for i, n := range m.visible {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// openEditor loads a note into the editor pane and focuses it.
func (m *Model) openEditor(id string) tea.Cmd {
	n, ok := m.store.Get(id)
	if !ok {
		return nil
	}
	m.editingID = id
	m.titleInput.SetValue(n.Title)
	m.contentArea.SetValue(n.Content) // leaves the cursor at the end
	m.activePane = PaneEditor
	m.updateEditorDimensions()
	if n.Title == "" {
		m.contentArea.Blur()
		return m.titleInput.Focus()
	}
	m.titleInput.Blur()
	return m.contentArea.Focus()
}

// closeEditor clears editor state, e.g. after the open note was
// deleted or vanished in an external reload.
func (m *Model) closeEditor() {
	m.editingID = ""
	m.titleInput.SetValue("")
	m.contentArea.SetValue("")
	m.titleInput.Blur()
	m.contentArea.Blur()
	m.activePane = PaneList
}

// markDirty schedules a debounced save. Every call bumps the
// generation so only the last tick in a burst fires.
func (m *Model) markDirty() tea.Cmd {
	m.dirty = true
	m.autoSaveID++
	id := m.autoSaveID
	return tea.Tick(m.cfg.Notes.AutoSaveDelay, func(time.Time) tea.Msg {
		return AutoSaveTickMsg{ID: id}
	})
}

// openExternalEditor writes the note content to a temp file and
// suspends the TUI while $EDITOR runs; the edited content is read back
// on exit.
func (m *Model) openExternalEditor(n note.Record) tea.Cmd {
	editor := m.cfg.Notes.DefaultEditor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vim"
	}

	f, err := os.CreateTemp("", "note-*.md")
	if err != nil {
		return msg.ShowError("editor: "+err.Error(), toastDuration)
	}
	path := f.Name()
	if _, err := f.WriteString(n.Content); err != nil {
		f.Close()
		os.Remove(path)
		return msg.ShowError("editor: "+err.Error(), toastDuration)
	}
	f.Close()

	id := n.ID
	return tea.ExecProcess(exec.Command(editor, path), func(err error) tea.Msg {
		return EditorFinishedMsg{ID: id, Path: path, Err: err}
	})
}

// readBackExternalEdit loads the temp file the external editor wrote
// and applies it as a content update.
func (m *Model) readBackExternalEdit(message EditorFinishedMsg) tea.Cmd {
	defer os.Remove(message.Path)

	if message.Err != nil {
		m.logger.Error("notes: external editor failed", "error", message.Err)
		return msg.ShowError("editor: "+message.Err.Error(), toastDuration)
	}
	data, err := os.ReadFile(message.Path)
	if err != nil {
		return msg.ShowError("editor: "+err.Error(), toastDuration)
	}

	content := string(data)
	if !m.store.Update(message.ID, collection.Patch{Content: &content}) {
		// Deleted while the editor was open; nothing to update.
		return nil
	}
	m.refreshVisible()
	if m.editingID == message.ID {
		m.contentArea.SetValue(content)
	}
	return tea.Batch(m.markDirty(), msg.ShowToast("Saved", toastDuration))
}

// quit flushes any pending save before exiting.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.dirty {
		m.dirty = false
		return m, tea.Sequence(m.saveCmd(), tea.Quit)
	}
	return m, tea.Quit
}

func (m *Model) updateEditorDimensions() {
	if m.width == 0 || m.height == 0 {
		return
	}
	editorWidth := m.width - m.listWidth - dividerWidth - 4 // borders + padding
	contentHeight := m.height - 2 - 3                       // borders, title row, footer
	if editorWidth < 1 {
		editorWidth = 1
	}
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.titleInput.Width = editorWidth
	m.contentArea.SetWidth(editorWidth)
	m.contentArea.SetHeight(contentHeight)
}

func quoteTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "untitled note"
	}
	return "\"" + title + "\""
}
