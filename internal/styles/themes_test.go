package styles

import "testing"

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"valid uppercase", "#FF5500", true},
		{"valid lowercase", "#aabbcc", true},
		{"valid with alpha", "#00000080", true},
		{"invalid 3-char", "#FFF", false},
		{"no hash", "FF5500", false},
		{"invalid char", "#GGGGGG", false},
		{"empty string", "", false},
		{"just hash", "#", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidHexColor(tt.input)
			if got != tt.valid {
				t.Errorf("IsValidHexColor(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestGetTheme_UnknownFallsBackToDark(t *testing.T) {
	theme := GetTheme("solarized")
	if theme.Name != "dark" {
		t.Errorf("GetTheme(unknown) = %q, want dark", theme.Name)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	if got := NextTheme("dark"); got != "light" {
		t.Errorf("NextTheme(dark) = %q, want light", got)
	}
	if got := NextTheme("light"); got != "dark" {
		t.Errorf("NextTheme(light) = %q, want dark", got)
	}
	if got := NextTheme("bogus"); got != "dark" {
		t.Errorf("NextTheme(bogus) = %q, want dark", got)
	}
}

func TestApplyTheme_UpdatesNoteColors(t *testing.T) {
	defer ApplyTheme("dark")

	ApplyTheme("light")
	if GetCurrentThemeName() != "light" {
		t.Fatalf("current theme = %q, want light", GetCurrentThemeName())
	}
	if got := NoteColor("red"); string(got) != "#DC2626" {
		t.Errorf("NoteColor(red) = %q under light theme", got)
	}

	ApplyTheme("dark")
	if got := NoteColor("red"); string(got) != "#F87171" {
		t.Errorf("NoteColor(red) = %q under dark theme", got)
	}
}

func TestNoteColor_UnknownTokenFallsBack(t *testing.T) {
	ApplyTheme("dark")
	if got := NoteColor("chartreuse"); string(got) != "#6B7280" {
		t.Errorf("NoteColor(unknown) = %q, want default", got)
	}
}

func TestApplyThemeWithOverrides(t *testing.T) {
	defer ApplyTheme("dark")

	ApplyThemeWithOverrides("dark", map[string]string{
		"primary":    "#123456",
		"note.red":   "#FF0000",
		"borderless": "#AABBCC", // Unknown key, ignored
		"accent":     "not-a-color",
	})

	if string(Primary) != "#123456" {
		t.Errorf("Primary = %q, want override", Primary)
	}
	if got := NoteColor("red"); string(got) != "#FF0000" {
		t.Errorf("NoteColor(red) = %q, want override", got)
	}
	// Invalid hex keeps the theme value.
	if string(Accent) != "#F59E0B" {
		t.Errorf("Accent = %q, want theme default", Accent)
	}

	// Overrides must not leak into the registry copy.
	ApplyTheme("dark")
	if got := NoteColor("red"); string(got) != "#F87171" {
		t.Errorf("registry theme mutated: NoteColor(red) = %q", got)
	}
}
