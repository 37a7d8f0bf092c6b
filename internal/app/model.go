// Package app implements the Bubble Tea model for the notes UI.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/RaKeShhhM/Notes-app/internal/collection"
	"github.com/RaKeShhhM/Notes-app/internal/config"
	"github.com/RaKeShhhM/Notes-app/internal/keymap"
	"github.com/RaKeShhhM/Notes-app/internal/note"
	"github.com/RaKeShhhM/Notes-app/internal/state"
	"github.com/RaKeShhhM/Notes-app/internal/storage"
	"github.com/RaKeShhhM/Notes-app/internal/styles"
)

const (
	// Pane layout
	dividerWidth     = 1
	defaultListWidth = 34
	minListWidth     = 20

	toastDuration = 2 * time.Second
)

// FocusPane represents which pane is active.
type FocusPane int

const (
	PaneList FocusPane = iota
	PaneEditor
)

// Model is the root Bubble Tea model.
type Model struct {
	cfg     *config.Config
	store   *collection.Store
	gateway *storage.Gateway
	keys    *keymap.Registry
	logger  *slog.Logger

	// View dimensions
	width  int
	height int

	// Pane state
	activePane FocusPane
	listWidth  int

	// List state
	visible   []note.Record // display order, filtered by the active query
	cursor    int
	scrollOff int

	// Search state
	searchMode  bool            // true while the search input is focused
	searchInput textinput.Model // query entry
	query       string          // applied query (set after the debounce fires)
	searchID    int             // generation for search debounce ticks

	// Editor state
	editingID   string // id of the note open in the editor, "" when none
	titleInput  textinput.Model
	contentArea textarea.Model
	dirty       bool // unsaved edits pending a debounced save
	wrapEnabled bool

	// Auto-save state
	autoSaveID int // incremented on each edit to identify debounce timer

	// Drag state
	drag     collection.Drag
	rowTop   int // y of the first list row, recorded at render time
	rowCount int // rows rendered, for hit testing

	// Delete confirm state
	confirmDelete bool
	confirmID     string
	confirmTitle  string

	// Toast state
	toast        string
	toastIsError bool
	toastID      int

	// Markdown preview renderer, cached per width and theme
	mdRenderer *glamour.TermRenderer
	mdWidth    int
	mdTheme    string

	quitting bool
}

// New builds the root model. The collection is expected to be loaded
// already; the model never touches the gateway except to save.
func New(cfg *config.Config, store *collection.Store, gateway *storage.Gateway, keys *keymap.Registry, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ti := textinput.New()
	ti.Placeholder = "search notes..."
	ti.CharLimit = 128
	ti.Prompt = "/ "

	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 256
	title.Prompt = ""

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.EndOfBufferCharacter = '~'
	ta.FocusedStyle = textarea.Style{
		Base:             lipgloss.NewStyle(),
		CursorLine:       lipgloss.NewStyle(),
		CursorLineNumber: styles.Muted,
		EndOfBuffer:      styles.Muted,
		LineNumber:       styles.Muted,
		Placeholder:      styles.Muted,
		Prompt:           lipgloss.NewStyle(),
		Text:             lipgloss.NewStyle(),
	}
	ta.BlurredStyle = ta.FocusedStyle
	// Unbind alt+c, it shadows nothing here but keeps copy free for terminals
	ta.KeyMap.CapitalizeWordForward = key.NewBinding(key.WithDisabled())
	ta.Blur()

	listWidth := state.GetListWidth()
	if listWidth < minListWidth {
		listWidth = defaultListWidth
	}

	m := &Model{
		cfg:         cfg,
		store:       store,
		gateway:     gateway,
		keys:        keys,
		logger:      logger,
		activePane:  PaneList,
		listWidth:   listWidth,
		searchInput: ti,
		titleInput:  title,
		contentArea: ta,
		wrapEnabled: state.GetLineWrap(),
	}
	m.refreshVisible()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// refreshVisible recomputes the display list from the store and clamps
// the cursor.
func (m *Model) refreshVisible() {
	m.visible = m.store.VisibleOrder(m.query)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the note under the cursor, or false when the list
// is empty.
func (m *Model) selected() (note.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return note.Record{}, false
	}
	return m.visible[m.cursor], true
}

// selectByID moves the cursor to the note with the given id if it is
// visible.
func (m *Model) selectByID(id string) {
	for i, n := range m.visible {
		if n.ID == id {
			m.cursor = i
			return
		}
	}
}
