// Package main is the entry point for the gallery TUI application.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"gallerytui/internal/config"
	"gallerytui/internal/features"
	"gallerytui/internal/library"
	"gallerytui/internal/store"
	"gallerytui/internal/tui"
)

const version = "0.1.0"

const helpText = `gallery-tui - Terminal board manager for a generative-image workspace

USAGE:
    gallery-tui [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --library <path>    Use a specific board library file

CONFIGURATION:
    Config file: ~/.config/gallery-tui/config.yaml
    Board library: $GALLERY_ROOT/boards.yaml (default ~/.local/share/gallery-tui/boards.yaml)

KEYBINDINGS:
    Navigation:
        j/k/h/l     Move between board cells
        Enter       Select board
        1/2/3       Select All Images / All Assets / No Board

    Board Actions:
        n           New board
        e           Rename board
        d           Delete board (with confirmation)
        y           Copy board id

    Other:
        /           Toggle search
        r           Refresh
        ?           Show help
        q           Quit
`

const configTemplate = `# gallery-tui Configuration
# Location: ~/.config/gallery-tui/config.yaml

# Workspace root. The board library lives at <root>/boards.yaml.
# The GALLERY_ROOT environment variable overrides this.
# root: ~/invokeai

# Explicit board library file (overrides root).
# library: /path/to/boards.yaml

ui:
  # Enable Vim-style keybindings (default: true)
  vim_mode: true
  # Desktop notification after a board is deleted (default: true)
  notify_on_delete: true

log:
  # Log file path. Empty disables logging (the TUI owns the terminal).
  # file: ~/.local/state/gallery-tui/log
  level: info

features:
  # Experimental batch-generation surface.
  batches: false
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		libraryPath string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&libraryPath, "library", "", "Board library file")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("gallery-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	// Normal application flow
	return runApp(libraryPath)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// Write template
	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// setupLogging points the logger at the configured file, or silences it.
// The TUI owns stdout and stderr, so nothing may log there.
func setupLogging(cfg *config.Config) (*os.File, error) {
	if cfg.Log.File == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetOutput(f)
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	return f, nil
}

// runApp starts the main TUI application.
func runApp(libraryPath string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if libraryPath == "" {
		libraryPath, err = cfg.LibraryPath()
		if err != nil {
			return err
		}
	}

	lib := library.Open(libraryPath)

	// The watcher needs the parent directory to exist.
	if err := os.MkdirAll(filepath.Dir(lib.Path()), 0755); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}

	// Watch the library so external edits refresh the board list.
	watcher, err := library.Watch(lib.Path())
	var changes <-chan struct{}
	if err != nil {
		// Degrade to manual refresh only.
		log.Warn("library watch unavailable", "err", err)
	} else {
		changes = watcher.Changes()
		defer watcher.Close()
	}

	flags := features.New(cfg.Features)
	log.Info("starting", "version", version, "library", libraryPath,
		"batches", flags.Enabled(features.Batches))

	// Create and run TUI
	app := tui.NewApp(lib, store.New(), cfg, flags, changes)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
