package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.Storage.Path = "/tmp/trip.db"
	cfg.Notes.AutoSaveDelay = 750 * time.Millisecond
	cfg.Notes.DefaultEditor = "vim"
	cfg.UI.ShowFooter = false
	cfg.UI.Theme.Name = "light"
	cfg.Keymap.Overrides["x"] = "delete-note"

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo() failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if got.Storage.Path != "/tmp/trip.db" {
		t.Errorf("Storage.Path = %q", got.Storage.Path)
	}
	if got.Notes.AutoSaveDelay != 750*time.Millisecond {
		t.Errorf("AutoSaveDelay = %v", got.Notes.AutoSaveDelay)
	}
	if got.Notes.DefaultEditor != "vim" {
		t.Errorf("DefaultEditor = %q", got.Notes.DefaultEditor)
	}
	if got.UI.ShowFooter {
		t.Error("ShowFooter = true, want false")
	}
	if got.UI.Theme.Name != "light" {
		t.Errorf("Theme.Name = %q", got.UI.Theme.Name)
	}
	if got.Keymap.Overrides["x"] != "delete-note" {
		t.Errorf("Keymap.Overrides = %v", got.Keymap.Overrides)
	}
}

func TestSaveTo_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "config.json")
	if err := SaveTo(Default(), path); err != nil {
		t.Fatalf("SaveTo() with missing parents failed: %v", err)
	}
}
