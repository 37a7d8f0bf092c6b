package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/RaKeShhhM/Notes-app/internal/collection"
	"github.com/RaKeShhhM/Notes-app/internal/note"
	"github.com/RaKeShhhM/Notes-app/internal/styles"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	if m.confirmDelete {
		return m.renderConfirmModal()
	}

	footerHeight := 0
	if m.cfg.UI.ShowFooter {
		footerHeight = 1
	}
	paneHeight := m.height - footerHeight
	if paneHeight < 4 {
		paneHeight = 4
	}

	listW := m.listWidth
	if listW > m.width-20 {
		listW = m.width - 20
	}
	if listW < minListWidth {
		listW = minListWidth
	}
	editorW := m.width - listW - dividerWidth

	list := m.renderListPane(listW, paneHeight)
	editor := m.renderEditorPane(editorW, paneHeight)
	divider := strings.TrimRight(strings.Repeat(" \n", paneHeight), "\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, divider, editor)

	if footerHeight > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
	}

	if m.toast != "" {
		body = m.overlayToast(body)
	}

	return lipgloss.NewStyle().Width(m.width).Height(m.height).MaxHeight(m.height).Render(body)
}

// renderListPane renders the left pane: search or title header plus
// note rows.
func (m *Model) renderListPane(width, height int) string {
	panel := styles.PanelInactive
	if m.activePane == PaneList {
		panel = styles.PanelActive
	}
	innerW := width - 4  // border + padding
	innerH := height - 2 // border
	if innerW < 1 {
		innerW = 1
	}

	var b strings.Builder

	// Header row: search input while searching, otherwise a title with
	// the note count.
	if m.searchMode {
		b.WriteString(ansi.Truncate(m.searchInput.View(), innerW, "…"))
	} else {
		header := fmt.Sprintf("Notes (%d)", m.store.Len())
		if m.query != "" {
			header = fmt.Sprintf("Notes \"%s\" (%d)", m.query, len(m.visible))
		}
		b.WriteString(styles.Title.Render(ansi.Truncate(header, innerW, "…")))
	}
	b.WriteString("\n")

	// Rows start under the header, inside the top border.
	m.rowTop = 2
	rowsAvail := innerH - 1
	if rowsAvail < 1 {
		rowsAvail = 1
	}

	// Keep cursor visible.
	if m.cursor < m.scrollOff {
		m.scrollOff = m.cursor
	}
	if m.cursor >= m.scrollOff+rowsAvail {
		m.scrollOff = m.cursor - rowsAvail + 1
	}
	if m.scrollOff < 0 {
		m.scrollOff = 0
	}

	end := m.scrollOff + rowsAvail
	if end > len(m.visible) {
		end = len(m.visible)
	}
	m.rowCount = end - m.scrollOff

	if len(m.visible) == 0 {
		empty := "No notes. Press n to create one."
		if m.query != "" {
			empty = "No matches."
		}
		b.WriteString(styles.Muted.Render(ansi.Truncate(empty, innerW, "…")))
	}

	for i := m.scrollOff; i < end; i++ {
		b.WriteString(m.renderRow(m.visible[i], i, innerW))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return panel.Width(width - 2).Height(innerH).Render(b.String())
}

// renderRow renders a single note line: drop indicator, pin marker,
// color dot, title, age.
func (m *Model) renderRow(n note.Record, idx, width int) string {
	indicator := " "
	if m.drag.Phase() == collection.DragHovering && m.drag.HoverID() == n.ID {
		if m.drag.HoverAfter() {
			indicator = styles.DropIndicator.Render("↓")
		} else {
			indicator = styles.DropIndicator.Render("↑")
		}
	}

	pin := " "
	if n.Pinned {
		pin = styles.PinMarker.Render("●")
	}

	dot := lipgloss.NewStyle().Foreground(styles.NoteColor(n.Color)).Render("▎")

	age := relativeAge(n.CreatedAt)
	title := strings.TrimSpace(n.Title)
	if title == "" {
		title = "(untitled)"
	}

	// indicator + pin + dot + space + age padding
	titleW := width - 3 - runewidth.StringWidth(age) - 1
	if titleW < 1 {
		titleW = 1
	}
	title = ansi.Truncate(title, titleW, "…")
	pad := titleW - runewidth.StringWidth(ansi.Strip(title))
	if pad < 0 {
		pad = 0
	}

	rowStyle := styles.ListItemNormal
	switch {
	case m.drag.Phase() != collection.DragIdle && m.drag.SourceID() == n.ID:
		rowStyle = styles.ListItemDragged
	case idx == m.cursor && m.activePane == PaneList:
		rowStyle = styles.ListItemSelected
	case idx == m.cursor:
		rowStyle = styles.ListItemNormal.Bold(true)
	}

	text := rowStyle.Render(title) + strings.Repeat(" ", pad+1) + styles.Subtle.Render(age)
	return indicator + pin + dot + text
}

// renderEditorPane renders the right pane: the editor when a note is
// open and focused, otherwise a preview of the selected note.
func (m *Model) renderEditorPane(width, height int) string {
	panel := styles.PanelInactive
	if m.activePane == PaneEditor {
		panel = styles.PanelActive
	}
	innerW := width - 4
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}

	var content string
	switch {
	case m.activePane == PaneEditor && m.editingID != "":
		content = m.renderEditor(innerW)
	default:
		content = m.renderPreview(innerW, innerH)
	}

	return panel.Width(width - 2).Height(innerH).Render(content)
}

func (m *Model) renderEditor(width int) string {
	var b strings.Builder
	titleW := width
	if m.dirty {
		titleW -= 2
	}
	b.WriteString(styles.Title.Render(ansi.Truncate(m.titleInput.View(), titleW, "…")))
	if m.dirty {
		b.WriteString(" ")
		b.WriteString(styles.PinMarker.Render("*"))
	}
	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(m.contentArea.View())
	return b.String()
}

// renderPreview shows the selected note as rendered markdown, or raw
// truncated lines when wrap is off.
func (m *Model) renderPreview(width, height int) string {
	n, ok := m.selected()
	if !ok {
		return styles.Muted.Render("Select a note to preview it.")
	}

	var b strings.Builder
	title := strings.TrimSpace(n.Title)
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(styles.Title.Render(ansi.Truncate(title, width, "…")))
	b.WriteString("  ")
	b.WriteString(styles.Subtle.Render(time.UnixMilli(n.CreatedAt).Format("2006-01-02 15:04")))
	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	if m.wrapEnabled {
		if rendered, err := m.renderMarkdown(n.Content, width); err == nil {
			b.WriteString(rendered)
			return b.String()
		}
	}
	for i, line := range strings.Split(n.Content, "\n") {
		if i >= height-2 {
			break
		}
		b.WriteString(ansi.Truncate(line, width, "…"))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderMarkdown runs glamour with a renderer cached per width and
// theme.
func (m *Model) renderMarkdown(md string, width int) (string, error) {
	theme := styles.CurrentMarkdownTheme
	if m.mdRenderer == nil || m.mdWidth != width || m.mdTheme != theme {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(theme),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		m.mdRenderer = r
		m.mdWidth = width
		m.mdTheme = theme
	}
	return m.mdRenderer.Render(md)
}

// renderConfirmModal draws the delete confirmation centered on screen.
func (m *Model) renderConfirmModal() string {
	title := styles.ModalTitle.Render("Delete " + quoteTitle(m.confirmTitle) + "?")
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.ButtonFocused.Render("y: delete"),
		"  ",
		styles.Button.Render("esc: cancel"),
	)
	box := styles.ModalBox.Render(lipgloss.JoinVertical(lipgloss.Left, title, buttons))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderFooter() string {
	var hints []string
	if m.activePane == PaneEditor && m.editingID != "" {
		hints = []string{"esc back", "tab list"}
	} else if m.searchMode {
		hints = []string{"enter apply", "esc clear"}
	} else {
		hints = []string{"n new", "enter edit", "e $EDITOR", "X delete", "p pin", "c color", "/ search", "ctrl+j/k move", "t theme", "q quit"}
	}
	line := styles.Muted.Render(strings.Join(hints, " · "))
	return styles.Footer.Width(m.width).Render(ansi.Truncate(line, m.width, "…"))
}

// overlayToast replaces the last body line with the toast.
func (m *Model) overlayToast(body string) string {
	style := styles.ToastSuccess
	if m.toastIsError {
		style = styles.ToastError
	}
	toast := style.Render(ansi.Truncate(m.toast, m.width-2, "…"))

	lines := strings.Split(body, "\n")
	if len(lines) == 0 {
		return toast
	}
	lines[len(lines)-1] = toast
	return strings.Join(lines, "\n")
}

// relativeAge formats a creation timestamp for the list row.
func relativeAge(createdAt int64) string {
	d := time.Since(time.UnixMilli(createdAt))
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return time.UnixMilli(createdAt).Format("Jan 02")
	}
}
