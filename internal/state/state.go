// Package state persists UI preferences. These live in their own
// file, entirely independent of the note data: resetting them never
// touches a note.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// State holds persistent user preferences.
type State struct {
	Theme string `json:"theme"` // "dark" or "light"

	// List pane width (columns, 0 = use default)
	ListWidth int `json:"listWidth,omitempty"`

	// Preview line wrapping. No omitempty: false must round-trip
	// against the true default.
	LineWrap bool `json:"lineWrap"`
}

var (
	current *State
	mu      sync.RWMutex
	path    string
)

// Init loads state from the default location.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitWithDir(filepath.Join(home, ".config", "notes"))
}

// InitWithDir loads state from a specified directory.
// This is primarily for testing to avoid reading real user state.
func InitWithDir(dir string) error {
	path = filepath.Join(dir, "state.json")
	return Load()
}

// Load reads state from disk.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	current = &State{
		Theme:    "dark", // default
		LineWrap: true,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // no state file yet, use defaults
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, current)
}

// Save writes state to disk.
func Save() error {
	mu.RLock()
	defer mu.RUnlock()

	if current == nil {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetTheme returns the saved theme name.
func GetTheme() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return "dark"
	}
	return current.Theme
}

// SetTheme saves the theme preference.
func SetTheme(name string) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.Theme = name
	mu.Unlock()
	return Save()
}

// GetListWidth returns the saved list pane width.
// Returns 0 if no preference is saved (use default).
func GetListWidth() int {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return 0
	}
	return current.ListWidth
}

// SetListWidth saves the list pane width.
func SetListWidth(width int) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.ListWidth = width
	mu.Unlock()
	return Save()
}

// GetLineWrap returns whether preview line wrapping is enabled.
func GetLineWrap() bool {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return true
	}
	return current.LineWrap
}

// SetLineWrap saves the line wrap preference.
func SetLineWrap(enabled bool) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.LineWrap = enabled
	mu.Unlock()
	return Save()
}
