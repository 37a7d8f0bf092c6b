// Package styles holds the lipgloss styles shared across the UI.
// Style variables are rebuilt whenever a theme is applied; they are
// only written during initialization and theme switches, both of
// which happen on the Bubble Tea update goroutine.
package styles

import "github.com/charmbracelet/lipgloss"

// Color variables, populated by ApplyThemeColors.
var (
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	TextSubtle    lipgloss.Color

	BgPrimary   lipgloss.Color
	BgSecondary lipgloss.Color
	BgTertiary  lipgloss.Color

	BorderNormal lipgloss.Color
	BorderActive lipgloss.Color

	ToastSuccessTextColor lipgloss.Color
	ToastErrorTextColor   lipgloss.Color
)

// CurrentMarkdownTheme is the glamour style name for the active theme.
var CurrentMarkdownTheme string

// Styles, rebuilt from the color variables.
var (
	PanelActive   lipgloss.Style
	PanelInactive lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style

	ListItemNormal   lipgloss.Style
	ListItemSelected lipgloss.Style
	ListItemDragged  lipgloss.Style
	ListCursor       lipgloss.Style
	DropIndicator    lipgloss.Style

	PinMarker   lipgloss.Style
	SearchMatch lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style

	Footer  lipgloss.Style
	Header  lipgloss.Style
	KeyHint lipgloss.Style

	ModalBox      lipgloss.Style
	ModalTitle    lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
)

func rebuildStyles() {
	PanelActive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		Padding(0, 1)

	PanelInactive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextSecondary)

	Body = lipgloss.NewStyle().
		Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Subtle = lipgloss.NewStyle().
		Foreground(TextSubtle)

	ListItemNormal = lipgloss.NewStyle().
		Foreground(TextPrimary)

	ListItemSelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgTertiary)

	ListItemDragged = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgSecondary).
		Italic(true)

	ListCursor = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	DropIndicator = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	PinMarker = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	SearchMatch = lipgloss.NewStyle().
		Background(Warning).
		Foreground(BgPrimary)

	ToastSuccess = lipgloss.NewStyle().
		Background(Success).
		Foreground(ToastSuccessTextColor).
		Bold(true).
		Padding(0, 1)

	ToastError = lipgloss.NewStyle().
		Background(Error).
		Foreground(ToastErrorTextColor).
		Bold(true).
		Padding(0, 1)

	Footer = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgSecondary)

	Header = lipgloss.NewStyle().
		Background(BgSecondary)

	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)

	ModalBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Background(BgSecondary).
		Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true).
		MarginBottom(1)

	Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BgTertiary).
		Padding(0, 2)

	ButtonFocused = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Primary).
		Padding(0, 2).
		Bold(true)
}

func init() {
	// Make styles usable before any explicit ApplyTheme call
	// (tests construct views without going through main).
	ApplyTheme("dark")
}
