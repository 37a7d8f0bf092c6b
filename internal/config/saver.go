package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string
// durations, mirroring what the loader accepts.
type saveConfig struct {
	Storage saveStorageConfig `json:"storage"`
	Notes   saveNotesConfig   `json:"notes"`
	Keymap  KeymapConfig      `json:"keymap"`
	UI      saveUIConfig      `json:"ui"`
}

type saveStorageConfig struct {
	Path          string `json:"path,omitempty"`
	WatchExternal *bool  `json:"watchExternal,omitempty"`
}

type saveNotesConfig struct {
	AutoSaveDelay string `json:"autoSaveDelay,omitempty"`
	SearchDelay   string `json:"searchDelay,omitempty"`
	DefaultEditor string `json:"defaultEditor,omitempty"`
}

type saveUIConfig struct {
	ShowFooter *bool       `json:"showFooter,omitempty"`
	Theme      ThemeConfig `json:"theme"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Storage: saveStorageConfig{
			Path:          cfg.Storage.Path,
			WatchExternal: &cfg.Storage.WatchExternal,
		},
		Notes: saveNotesConfig{
			AutoSaveDelay: cfg.Notes.AutoSaveDelay.String(),
			SearchDelay:   cfg.Notes.SearchDelay.String(),
			DefaultEditor: cfg.Notes.DefaultEditor,
		},
		Keymap: cfg.Keymap,
		UI: saveUIConfig{
			ShowFooter: &cfg.UI.ShowFooter,
			Theme:      cfg.UI.Theme,
		},
	}
}

// Save writes the config to ~/.config/notes/config.json
func Save(cfg *Config) error {
	return SaveTo(cfg, ConfigPath())
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	sc := toSaveConfig(cfg)
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SaveTheme updates only the theme name in config and saves.
func SaveTheme(themeName string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.UI.Theme.Name = themeName
	return Save(cfg)
}
