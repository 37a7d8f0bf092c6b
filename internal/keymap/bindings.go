package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "ctrl+c", Command: "quit", Context: "global"},

		// Note list context
		{Key: "q", Command: "quit", Context: "list"},
		{Key: "j", Command: "cursor-down", Context: "list"},
		{Key: "down", Command: "cursor-down", Context: "list"},
		{Key: "k", Command: "cursor-up", Context: "list"},
		{Key: "up", Command: "cursor-up", Context: "list"},
		{Key: "g", Command: "cursor-top", Context: "list"},
		{Key: "G", Command: "cursor-bottom", Context: "list"},
		{Key: "ctrl+j", Command: "move-note-down", Context: "list"},
		{Key: "ctrl+k", Command: "move-note-up", Context: "list"},
		{Key: "enter", Command: "edit-note", Context: "list"},
		{Key: "l", Command: "edit-note", Context: "list"},
		{Key: "n", Command: "new-note", Context: "list"},
		{Key: "e", Command: "open-external", Context: "list"},
		{Key: "X", Command: "delete-note", Context: "list"},
		{Key: "p", Command: "toggle-pin", Context: "list"},
		{Key: "c", Command: "cycle-color", Context: "list"},
		{Key: "y", Command: "yank-note", Context: "list"},
		{Key: "Y", Command: "yank-title", Context: "list"},
		{Key: "r", Command: "reload", Context: "list"},
		{Key: "t", Command: "toggle-theme", Context: "list"},
		{Key: "w", Command: "toggle-wrap", Context: "list"},
		{Key: "/", Command: "search", Context: "list"},
		{Key: "esc", Command: "clear-search", Context: "list"},
		{Key: "tab", Command: "switch-pane", Context: "list"},

		// Editor context
		{Key: "esc", Command: "back", Context: "editor"},
		{Key: "tab", Command: "switch-pane", Context: "editor"},

		// Search input context
		{Key: "esc", Command: "cancel", Context: "search"},
		{Key: "enter", Command: "confirm", Context: "search"},

		// Delete confirm context
		{Key: "esc", Command: "cancel", Context: "confirm"},
		{Key: "n", Command: "cancel", Context: "confirm"},
		{Key: "enter", Command: "confirm", Context: "confirm"},
		{Key: "y", Command: "confirm", Context: "confirm"},
	}
}

// RegisterDefaults registers all default bindings with the registry.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
}
