package styles

import (
	"regexp"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// themeMu protects access to themeRegistry and currentTheme for thread safety
var themeMu sync.RWMutex

// hexColorRegex validates hex color codes (#RRGGBB or #RRGGBBAA with alpha)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// ColorPalette holds all theme colors
type ColorPalette struct {
	// Brand colors
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`

	// Status colors
	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`

	// Text colors
	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TextMuted     string `json:"textMuted"`
	TextSubtle    string `json:"textSubtle"`

	// Background colors
	BgPrimary   string `json:"bgPrimary"`
	BgSecondary string `json:"bgSecondary"`
	BgTertiary  string `json:"bgTertiary"`

	// Border colors
	BorderNormal string `json:"borderNormal"`
	BorderActive string `json:"borderActive"`

	// Toast foregrounds
	ToastSuccessText string `json:"toastSuccessText"`
	ToastErrorText   string `json:"toastErrorText"`

	// Note accent colors keyed by the color token stored on each note
	NoteColors map[string]string `json:"noteColors"`

	// Glamour theme name for markdown preview
	MarkdownTheme string `json:"markdownTheme"`
}

// Theme represents a complete theme configuration
type Theme struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Colors      ColorPalette `json:"colors"`
}

// Built-in themes
var (
	// DarkTheme is the default theme
	DarkTheme = Theme{
		Name:        "dark",
		DisplayName: "Dark",
		Colors: ColorPalette{
			Primary:   "#7C3AED", // Purple
			Secondary: "#3B82F6", // Blue
			Accent:    "#F59E0B", // Amber

			Success: "#10B981",
			Warning: "#F59E0B",
			Error:   "#EF4444",

			TextPrimary:   "#F9FAFB",
			TextSecondary: "#9CA3AF",
			TextMuted:     "#6B7280",
			TextSubtle:    "#4B5563",

			BgPrimary:   "#111827",
			BgSecondary: "#1F2937",
			BgTertiary:  "#374151",

			BorderNormal: "#374151",
			BorderActive: "#7C3AED",

			ToastSuccessText: "#000000", // Black on green
			ToastErrorText:   "#FFFFFF", // White on red

			NoteColors: map[string]string{
				"default": "#6B7280",
				"red":     "#F87171",
				"orange":  "#FB923C",
				"yellow":  "#FACC15",
				"green":   "#4ADE80",
				"teal":    "#2DD4BF",
				"blue":    "#60A5FA",
				"purple":  "#C084FC",
			},

			MarkdownTheme: "dark",
		},
	}

	// LightTheme for light terminal backgrounds
	LightTheme = Theme{
		Name:        "light",
		DisplayName: "Light",
		Colors: ColorPalette{
			Primary:   "#6D28D9",
			Secondary: "#2563EB",
			Accent:    "#D97706",

			Success: "#059669",
			Warning: "#D97706",
			Error:   "#DC2626",

			TextPrimary:   "#111827",
			TextSecondary: "#4B5563",
			TextMuted:     "#6B7280",
			TextSubtle:    "#9CA3AF",

			BgPrimary:   "#FFFFFF",
			BgSecondary: "#F3F4F6",
			BgTertiary:  "#E5E7EB",

			BorderNormal: "#D1D5DB",
			BorderActive: "#6D28D9",

			ToastSuccessText: "#FFFFFF",
			ToastErrorText:   "#FFFFFF",

			NoteColors: map[string]string{
				"default": "#6B7280",
				"red":     "#DC2626",
				"orange":  "#EA580C",
				"yellow":  "#CA8A04",
				"green":   "#16A34A",
				"teal":    "#0D9488",
				"blue":    "#2563EB",
				"purple":  "#9333EA",
			},

			MarkdownTheme: "light",
		},
	}
)

// themeRegistry holds all available themes
var themeRegistry = map[string]Theme{
	"dark":  DarkTheme,
	"light": LightTheme,
}

// currentTheme tracks the active theme name
var currentTheme = "dark"

// noteColors holds the active theme's note accent colors
var noteColors map[string]lipgloss.Color

// IsValidHexColor checks if a string is a valid hex color code (#RRGGBB or #RRGGBBAA)
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// IsValidTheme checks if a theme name exists in the registry
func IsValidTheme(name string) bool {
	themeMu.RLock()
	defer themeMu.RUnlock()
	_, ok := themeRegistry[name]
	return ok
}

// GetTheme returns a theme by name, or the dark theme if not found
func GetTheme(name string) Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if theme, ok := themeRegistry[name]; ok {
		return theme
	}
	return DarkTheme
}

// GetCurrentThemeName returns the name of the currently active theme
func GetCurrentThemeName() string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// ListThemes returns the names of all available themes in sorted order
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NextTheme returns the theme name following the given one in sorted
// order, wrapping at the end.
func NextTheme(name string) string {
	names := ListThemes()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// NoteColor returns the active theme's accent color for a note color
// token. Unknown tokens fall back to the default entry.
func NoteColor(token string) lipgloss.Color {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if c, ok := noteColors[token]; ok {
		return c
	}
	return noteColors["default"]
}

// ApplyTheme applies a theme by name, updating all style variables
func ApplyTheme(name string) {
	theme := GetTheme(name)
	ApplyThemeColors(theme)
	themeMu.Lock()
	currentTheme = theme.Name
	themeMu.Unlock()
}

// ApplyThemeWithOverrides applies a theme with color overrides from config
func ApplyThemeWithOverrides(name string, overrides map[string]string) {
	theme := GetTheme(name)

	if overrides != nil {
		// The palette's NoteColors map is shared with the registry
		// entry; copy before mutating.
		nc := make(map[string]string, len(theme.Colors.NoteColors))
		for k, v := range theme.Colors.NoteColors {
			nc[k] = v
		}
		theme.Colors.NoteColors = nc
		for key, value := range overrides {
			applySingleOverride(&theme.Colors, key, value)
		}
	}

	ApplyThemeColors(theme)
	themeMu.Lock()
	currentTheme = theme.Name
	themeMu.Unlock()
}

// applySingleOverride applies a single override. Color values must be
// valid hex colors (#RRGGBB); invalid colors are silently ignored.
// Keys of the form "note.<token>" override a note accent color.
func applySingleOverride(palette *ColorPalette, key, value string) {
	if key == "markdownTheme" {
		palette.MarkdownTheme = value
		return
	}
	if !IsValidHexColor(value) {
		return
	}

	if len(key) > 5 && key[:5] == "note." {
		palette.NoteColors[key[5:]] = value
		return
	}

	switch key {
	case "primary":
		palette.Primary = value
	case "secondary":
		palette.Secondary = value
	case "accent":
		palette.Accent = value
	case "success":
		palette.Success = value
	case "warning":
		palette.Warning = value
	case "error":
		palette.Error = value
	case "textPrimary":
		palette.TextPrimary = value
	case "textSecondary":
		palette.TextSecondary = value
	case "textMuted":
		palette.TextMuted = value
	case "textSubtle":
		palette.TextSubtle = value
	case "bgPrimary":
		palette.BgPrimary = value
	case "bgSecondary":
		palette.BgSecondary = value
	case "bgTertiary":
		palette.BgTertiary = value
	case "borderNormal":
		palette.BorderNormal = value
	case "borderActive":
		palette.BorderActive = value
	case "toastSuccessText":
		palette.ToastSuccessText = value
	case "toastErrorText":
		palette.ToastErrorText = value
	}
}

// ApplyThemeColors updates all style package variables from a theme.
//
// IMPORTANT: This function is NOT thread-safe for concurrent reads.
// It must only be called during initialization or from the Bubble Tea
// update loop, never while a View is rendering on another goroutine.
func ApplyThemeColors(theme Theme) {
	c := theme.Colors

	Primary = lipgloss.Color(c.Primary)
	Secondary = lipgloss.Color(c.Secondary)
	Accent = lipgloss.Color(c.Accent)

	Success = lipgloss.Color(c.Success)
	Warning = lipgloss.Color(c.Warning)
	Error = lipgloss.Color(c.Error)

	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextSecondary = lipgloss.Color(c.TextSecondary)
	TextMuted = lipgloss.Color(c.TextMuted)
	TextSubtle = lipgloss.Color(c.TextSubtle)

	BgPrimary = lipgloss.Color(c.BgPrimary)
	BgSecondary = lipgloss.Color(c.BgSecondary)
	BgTertiary = lipgloss.Color(c.BgTertiary)

	BorderNormal = lipgloss.Color(c.BorderNormal)
	BorderActive = lipgloss.Color(c.BorderActive)

	ToastSuccessTextColor = lipgloss.Color(c.ToastSuccessText)
	ToastErrorTextColor = lipgloss.Color(c.ToastErrorText)

	CurrentMarkdownTheme = c.MarkdownTheme

	nc := make(map[string]lipgloss.Color, len(c.NoteColors))
	for k, v := range c.NoteColors {
		nc[k] = lipgloss.Color(v)
	}

	themeMu.Lock()
	noteColors = nc
	themeMu.Unlock()

	rebuildStyles()
}
