package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focusgarden/internal/scheduler"
	"github.com/sandeepkv93/focusgarden/internal/storage"
	"github.com/sandeepkv93/focusgarden/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "focusgarden failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	engine := scheduler.NewEngine(cfg.SchedulerBuffer)
	engine.Start()
	defer engine.Stop()

	var notifier update.DesktopNotifier
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	program := tea.NewProgram(update.NewModelWithConfig(store, engine, notifier, cfg))
	_, err = program.Run()
	return err
}

func openStore(cfg update.RuntimeConfig) (storage.Store, error) {
	path := cfg.StorePath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, ".focusgarden")
	}

	switch cfg.StoreBackend {
	case "file":
		return storage.OpenFileStore(path)
	case "sqlite":
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
		return storage.OpenSQLite(filepath.Join(path, "focusgarden.db"))
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
