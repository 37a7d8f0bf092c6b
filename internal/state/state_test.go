package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestInitWithDir_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	originalPath := path
	originalCurrent := current

	err := InitWithDir(filepath.Join(tmpDir, ".config", "notes"))
	if err != nil {
		t.Fatalf("InitWithDir() failed: %v", err)
	}

	if current == nil {
		t.Fatal("current state should be initialized")
	}
	if current.Theme != "dark" {
		t.Errorf("default Theme = %q, want dark", current.Theme)
	}
	if !current.LineWrap {
		t.Error("LineWrap should default to true")
	}

	// Cleanup
	path = originalPath
	current = originalCurrent
}

func TestLoad_NonExistent(t *testing.T) {
	tmpDir := t.TempDir()
	originalPath := path
	originalCurrent := current

	path = filepath.Join(tmpDir, "nonexistent", "state.json")

	err := Load()
	if err != nil {
		t.Fatalf("Load() for non-existent file should return nil, got %v", err)
	}

	if current == nil || current.Theme != "dark" {
		t.Error("current should be initialized with defaults")
	}

	// Cleanup
	path = originalPath
	current = originalCurrent
}

func TestLoad_ExistingFile(t *testing.T) {
	tmpDir := t.TempDir()
	originalPath := path
	originalCurrent := current

	stateFile := filepath.Join(tmpDir, "state.json")
	path = stateFile

	testState := State{Theme: "light", ListWidth: 42}
	data, _ := json.Marshal(testState)
	if err := os.WriteFile(stateFile, data, 0644); err != nil {
		t.Fatalf("failed to write test state file: %v", err)
	}

	err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if current.Theme != "light" {
		t.Errorf("Theme = %q, want light", current.Theme)
	}
	if current.ListWidth != 42 {
		t.Errorf("ListWidth = %d, want 42", current.ListWidth)
	}

	// Cleanup
	path = originalPath
	current = originalCurrent
}

func TestSetTheme_Persists(t *testing.T) {
	tmpDir := t.TempDir()
	originalPath := path
	originalCurrent := current

	if err := InitWithDir(tmpDir); err != nil {
		t.Fatalf("InitWithDir() failed: %v", err)
	}

	if err := SetTheme("light"); err != nil {
		t.Fatalf("SetTheme() failed: %v", err)
	}
	if GetTheme() != "light" {
		t.Errorf("GetTheme() = %q, want light", GetTheme())
	}

	// Reload from disk and confirm persistence.
	if err := Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if GetTheme() != "light" {
		t.Errorf("after reload GetTheme() = %q, want light", GetTheme())
	}

	// Cleanup
	path = originalPath
	current = originalCurrent
}

func TestSetListWidth(t *testing.T) {
	tmpDir := t.TempDir()
	originalPath := path
	originalCurrent := current

	if err := InitWithDir(tmpDir); err != nil {
		t.Fatalf("InitWithDir() failed: %v", err)
	}

	if err := SetListWidth(30); err != nil {
		t.Fatalf("SetListWidth() failed: %v", err)
	}
	if GetListWidth() != 30 {
		t.Errorf("GetListWidth() = %d, want 30", GetListWidth())
	}

	// Cleanup
	path = originalPath
	current = originalCurrent
}
