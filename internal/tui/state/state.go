// Package state holds the application state shared by the logic and ui
// packages.
package state

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"gallerytui/internal/board"
	"gallerytui/internal/config"
	"gallerytui/internal/features"
	"gallerytui/internal/library"
	"gallerytui/internal/store"
)

// SearchMode is the state of the region above the board grid: either the
// fixed system-board buttons or a search input, never both.
type SearchMode int

const (
	ModeSystemBoards SearchMode = iota
	ModeSearching
)

// Toggle flips between the two modes. It is the only transition.
func (m SearchMode) Toggle() SearchMode {
	if m == ModeSearching {
		return ModeSystemBoards
	}
	return ModeSearching
}

func (m SearchMode) String() string {
	if m == ModeSearching {
		return "searching"
	}
	return "system-boards"
}

// PendingDelete tracks the board targeted by an in-progress delete
// confirmation. The zero value means no delete is pending.
type PendingDelete struct {
	board board.Board
	set   bool
}

// Set records the board awaiting confirmation.
func (p *PendingDelete) Set(b board.Board) {
	p.board = b
	p.set = true
}

// Clear resets to absent. Called when the dialog closes, confirmed or not.
func (p *PendingDelete) Clear() {
	*p = PendingDelete{}
}

// Board returns the pending board, if any.
func (p PendingDelete) Board() (board.Board, bool) {
	return p.board, p.set
}

// Active reports whether a delete confirmation is in progress.
func (p PendingDelete) Active() bool {
	return p.set
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Library *library.Library
	Store   *store.Store
	Config  *config.Config
	Flags   features.Flags

	// Board data, in library order. The view never mutates it.
	Boards []board.Board

	// Search region state machine
	Mode SearchMode

	// Delete confirmation state
	PendingDelete PendingDelete

	// Cursor into the filtered board grid
	GridCursor int

	// UI state
	Loading   bool
	Err       error
	StatusMsg string
	Width     int
	Height    int
	ShowHelp  bool

	// Components
	Spinner     spinner.Model
	SearchInput textinput.Model
	Keymap      Keymap

	// Board create/rename input state
	NameInput  textinput.Model
	IsCreating bool
	IsRenaming bool
	RenamingID string

	// Signals external changes to the library file.
	LibraryChanges <-chan struct{}
}

// GridCellWidth is the outer display width of one board cell, borders and
// padding included.
const GridCellWidth = 24

// GridColumns returns how many board cells fit per row at the current
// terminal width.
func (s *State) GridColumns() int {
	cols := (s.Width - 4) / GridCellWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

// VisibleBoards derives the filtered board list from the full collection
// and the store's search text. It is recomputed on every call; caching
// here would let the grid go stale when the library changes underneath.
func (s *State) VisibleBoards() []board.Board {
	return board.Filter(s.Boards, s.Store.SearchText())
}
