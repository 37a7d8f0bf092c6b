package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Storage StorageConfig `json:"storage"`
	Notes   NotesConfig   `json:"notes"`
	Keymap  KeymapConfig  `json:"keymap"`
	UI      UIConfig      `json:"ui"`
}

// StorageConfig configures where the note database lives.
type StorageConfig struct {
	// Path to the SQLite database file (supports ~ expansion).
	Path string `json:"path"`
	// WatchExternal reloads the collection when another running
	// instance writes the database.
	WatchExternal bool `json:"watchExternal"`
}

// NotesConfig configures editing behavior.
type NotesConfig struct {
	// AutoSaveDelay is the typing pause before a debounced save.
	AutoSaveDelay time.Duration `json:"autoSaveDelay"`
	// SearchDelay is the typing pause before the list refilters.
	SearchDelay time.Duration `json:"searchDelay"`
	// DefaultEditor opens notes externally ("" = $EDITOR).
	DefaultEditor string `json:"defaultEditor"`
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter bool        `json:"showFooter"`
	Theme      ThemeConfig `json:"theme"`
}

// ThemeConfig configures the color theme.
type ThemeConfig struct {
	Name      string            `json:"name"`
	Overrides map[string]string `json:"overrides,omitempty"` // user customizations on top
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:          "~/.config/notes/notes.db",
			WatchExternal: true,
		},
		Notes: NotesConfig{
			AutoSaveDelay: 600 * time.Millisecond,
			SearchDelay:   200 * time.Millisecond,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		UI: UIConfig{
			ShowFooter: true,
			Theme: ThemeConfig{
				Name:      "dark",
				Overrides: make(map[string]string),
			},
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Notes.AutoSaveDelay <= 0 {
		c.Notes.AutoSaveDelay = 600 * time.Millisecond
	}
	if c.Notes.SearchDelay <= 0 {
		c.Notes.SearchDelay = 200 * time.Millisecond
	}
	if c.Storage.Path == "" {
		c.Storage.Path = Default().Storage.Path
	}
	return nil
}
