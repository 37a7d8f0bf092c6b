package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RaKeShhhM/Notes-app/internal/app"
	"github.com/RaKeShhhM/Notes-app/internal/collection"
	"github.com/RaKeShhhM/Notes-app/internal/config"
	"github.com/RaKeShhhM/Notes-app/internal/keymap"
	"github.com/RaKeShhhM/Notes-app/internal/state"
	"github.com/RaKeShhhM/Notes-app/internal/storage"
	"github.com/RaKeShhhM/Notes-app/internal/styles"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	dbPath       = flag.String("db", "", "path to notes database (overrides config)")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("notes version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// Setup logging. Stderr is invisible behind the alt screen, so
	// logs only matter when redirected to a file.
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.Storage.Path = config.ExpandPath(*dbPath)
	}

	// Load persistent UI state (ignore errors - state is optional)
	_ = state.Init()

	// Theme: last session's choice wins over config
	theme := state.GetTheme()
	if theme == "" || !styles.IsValidTheme(theme) {
		theme = cfg.UI.Theme.Name
	}
	styles.ApplyThemeWithOverrides(theme, cfg.UI.Theme.Overrides)

	// Open storage and load the collection
	kv, err := storage.OpenKV(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open notes database: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	gateway := storage.NewGateway(kv, logger)
	store := collection.New()
	store.Load(gateway.Load())

	// Keymap with user overrides
	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)
	km.ApplyOverrides(cfg.Keymap.Overrides)

	model := app.New(cfg, store, gateway, km, logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Reload when another process writes the database
	if cfg.Storage.WatchExternal {
		watcher, err := storage.Watch(cfg.Storage.Path, func() {
			p.Send(app.ExternalChangeMsg{})
		})
		if err != nil {
			logger.Warn("notes: external watch unavailable", "error", err)
		} else {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}

	return "devel"
}
