// Package tui provides the terminal user interface for the board gallery.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gallerytui/internal/config"
	"gallerytui/internal/features"
	"gallerytui/internal/library"
	"gallerytui/internal/store"
	"gallerytui/internal/tui/logic"
	"gallerytui/internal/tui/state"
	"gallerytui/internal/tui/styles"
	"gallerytui/internal/tui/ui"
)

// App is the main Bubble Tea model: shared state updated by the logic
// handler and drawn by the renderer.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates a new App instance.
func NewApp(lib *library.Library, st *store.Store, cfg *config.Config, flags features.Flags, changes <-chan struct{}) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	searchInput := textinput.New()
	searchInput.Placeholder = "Search boards..."
	searchInput.CharLimit = 100
	searchInput.Width = 40

	appState := &state.State{
		Library:        lib,
		Store:          st,
		Config:         cfg,
		Flags:          flags,
		Keymap:         state.DefaultKeymap(),
		Spinner:        s,
		SearchInput:    searchInput,
		Loading:        true,
		LibraryChanges: changes,
	}

	return &App{
		state:    appState,
		handler:  logic.NewHandler(appState),
		renderer: ui.NewRenderer(appState),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}
