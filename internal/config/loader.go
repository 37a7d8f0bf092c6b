package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	configDir  = ".config/notes"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary. Duration fields
// arrive as strings and booleans as pointers so absent keys can be
// told apart from zero values.
type rawConfig struct {
	Storage rawStorageConfig `json:"storage"`
	Notes   rawNotesConfig   `json:"notes"`
	Keymap  KeymapConfig     `json:"keymap"`
	UI      rawUIConfig      `json:"ui"`
}

type rawStorageConfig struct {
	Path          string `json:"path"`
	WatchExternal *bool  `json:"watchExternal"`
}

type rawNotesConfig struct {
	AutoSaveDelay string `json:"autoSaveDelay"`
	SearchDelay   string `json:"searchDelay"`
	DefaultEditor string `json:"defaultEditor"`
}

type rawUIConfig struct {
	ShowFooter *bool       `json:"showFooter"`
	Theme      ThemeConfig `json:"theme"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/notes/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil // Return defaults on error
		}
		path = filepath.Join(home, configDir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	mergeConfig(cfg, &raw)

	cfg.Storage.Path = ExpandPath(cfg.Storage.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the defaults.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// Storage
	if raw.Storage.Path != "" {
		cfg.Storage.Path = raw.Storage.Path
	}
	if raw.Storage.WatchExternal != nil {
		cfg.Storage.WatchExternal = *raw.Storage.WatchExternal
	}

	// Notes
	if raw.Notes.AutoSaveDelay != "" {
		if d, err := time.ParseDuration(raw.Notes.AutoSaveDelay); err == nil {
			cfg.Notes.AutoSaveDelay = d
		}
	}
	if raw.Notes.SearchDelay != "" {
		if d, err := time.ParseDuration(raw.Notes.SearchDelay); err == nil {
			cfg.Notes.SearchDelay = d
		}
	}
	if raw.Notes.DefaultEditor != "" {
		cfg.Notes.DefaultEditor = raw.Notes.DefaultEditor
	}

	// Keymap
	if raw.Keymap.Overrides != nil {
		for k, v := range raw.Keymap.Overrides {
			cfg.Keymap.Overrides[k] = v
		}
	}

	// UI
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.Theme.Name != "" {
		cfg.UI.Theme.Name = raw.UI.Theme.Name
	}
	if raw.UI.Theme.Overrides != nil {
		for k, v := range raw.UI.Theme.Overrides {
			cfg.UI.Theme.Overrides[k] = v
		}
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
