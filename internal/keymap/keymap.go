// Package keymap maps key presses to named commands, with user
// overrides layered on top of the defaults.
package keymap

// Binding associates a key with a command in a given context.
type Binding struct {
	Key     string `json:"key"`
	Command string `json:"command"`
	Context string `json:"context"`
}

// Registry resolves keys to commands. Context-specific bindings take
// precedence over global ones.
type Registry struct {
	bindings map[string]map[string]string // context -> key -> command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[string]map[string]string)}
}

// RegisterBinding adds or replaces a binding.
func (r *Registry) RegisterBinding(b Binding) {
	ctx := b.Context
	if ctx == "" {
		ctx = "global"
	}
	if r.bindings[ctx] == nil {
		r.bindings[ctx] = make(map[string]string)
	}
	r.bindings[ctx][b.Key] = b.Command
}

// Lookup resolves a key within a context, falling back to global
// bindings. Returns "" when the key is unbound.
func (r *Registry) Lookup(context, key string) string {
	if cmd, ok := r.bindings[context][key]; ok {
		return cmd
	}
	if cmd, ok := r.bindings["global"][key]; ok {
		return cmd
	}
	return ""
}

// ApplyOverrides layers user overrides from config on top of the
// current bindings. Keys are "key" (global) or "context:key".
func (r *Registry) ApplyOverrides(overrides map[string]string) {
	for spec, command := range overrides {
		ctx, key := "global", spec
		for i := 0; i < len(spec); i++ {
			if spec[i] == ':' {
				ctx, key = spec[:i], spec[i+1:]
				break
			}
		}
		r.RegisterBinding(Binding{Key: key, Command: command, Context: ctx})
	}
}
