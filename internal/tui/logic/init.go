package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"gallerytui/internal/board"
)

// Init implements tea.Model.
func (h *Handler) Init() tea.Cmd {
	return tea.Batch(
		h.Spinner.Tick,
		h.LoadBoards(),
		h.waitForLibraryChange(),
	)
}

// LoadBoards reads the board collection from the library.
func (h *Handler) LoadBoards() tea.Cmd {
	lib := h.Library
	return func() tea.Msg {
		boards, err := lib.Load()
		if err != nil {
			return errMsg{err}
		}
		return boardsLoadedMsg{boards: boards}
	}
}

// waitForLibraryChange blocks until the library file changes on disk.
func (h *Handler) waitForLibraryChange() tea.Cmd {
	ch := h.LibraryChanges
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return libraryChangedMsg{}
	}
}

// Message types
type errMsg struct{ err error }
type statusMsg struct{ msg string }
type boardsLoadedMsg struct{ boards []board.Board }
type boardCreatedMsg struct{ board board.Board }
type boardRenamedMsg struct{ board board.Board }
type boardDeletedMsg struct{ id, name string }
type libraryChangedMsg struct{}
