package logic

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"gallerytui/internal/board"
	"gallerytui/internal/tui/state"
)

// Handler applies messages to the shared state and produces follow-up
// commands.
type Handler struct {
	*state.State
}

func NewHandler(s *state.State) *Handler {
	return &Handler{State: s}
}

func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		h.Width = msg.Width
		h.Height = msg.Height
		return nil

	case spinner.TickMsg:
		if !h.Loading {
			return nil
		}
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case errMsg:
		h.Loading = false
		h.Err = msg.err
		return nil

	case statusMsg:
		h.StatusMsg = msg.msg
		return nil

	case boardsLoadedMsg:
		return h.handleBoardsLoaded(msg)

	case boardCreatedMsg:
		h.Loading = false
		h.StatusMsg = "Created board: " + msg.board.Name
		// New boards become the active board, matching the web UI.
		h.Store.Select(msg.board.ID)
		return h.LoadBoards()

	case boardRenamedMsg:
		h.Loading = false
		h.StatusMsg = "Renamed board: " + msg.board.Name
		return h.LoadBoards()

	case boardDeletedMsg:
		h.Loading = false
		h.StatusMsg = "Deleted board: " + msg.name
		if h.Store.IsSelected(msg.id) {
			h.Store.ClearSelection()
		}
		return h.LoadBoards()

	case libraryChangedMsg:
		// The library file changed underneath us; reload and keep watching.
		return tea.Batch(h.LoadBoards(), h.waitForLibraryChange())
	}

	// Forward non-key messages (like blink) to active inputs
	if h.IsCreating || h.IsRenaming {
		var cmd tea.Cmd
		h.NameInput, cmd = h.NameInput.Update(msg)
		return cmd
	}
	if h.Mode == state.ModeSearching {
		var cmd tea.Cmd
		h.SearchInput, cmd = h.SearchInput.Update(msg)
		return cmd
	}

	return nil
}

// handleKeyMsg dispatches keys, modal surfaces first.
func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if h.PendingDelete.Active() {
		return h.handleDeleteConfirmKeyMsg(msg)
	}
	if h.IsCreating || h.IsRenaming {
		return h.handleNameInputKeyMsg(msg)
	}
	if h.ShowHelp {
		switch msg.String() {
		case "esc", "q", "?":
			h.ShowHelp = false
		}
		return nil
	}
	if h.Mode == state.ModeSearching {
		return h.handleSearchKeyMsg(msg)
	}

	switch msg.String() {
	case h.Keymap.Quit.Key:
		return tea.Quit

	case h.Keymap.Help.Key:
		h.ShowHelp = true
		return nil

	case h.Keymap.Search.Key:
		return h.toggleSearch()

	case h.Keymap.Refresh.Key:
		h.Loading = true
		return h.LoadBoards()

	case h.Keymap.Up.Key, "up":
		h.moveCursor(-h.GridColumns())
	case h.Keymap.Down.Key, "down":
		h.moveCursor(h.GridColumns())
	case h.Keymap.Left.Key, "left":
		h.moveCursor(-1)
	case h.Keymap.Right.Key, "right":
		h.moveCursor(1)

	case h.Keymap.Select.Key:
		return h.handleSelectBoard()

	case h.Keymap.AllImages.Key:
		return h.selectSystemBoard(board.SystemImages)
	case h.Keymap.AllAssets.Key:
		return h.selectSystemBoard(board.SystemAssets)
	case h.Keymap.NoBoard.Key:
		return h.selectSystemBoard(board.SystemNoBoard)

	case h.Keymap.NewBoard.Key:
		return h.handleNewBoard()
	case h.Keymap.RenameBoard.Key:
		return h.handleRenameBoard()
	case h.Keymap.DeleteBoard.Key:
		return h.handleRequestDelete()
	case h.Keymap.CopyID.Key:
		return h.handleCopyID()
	}

	return nil
}

func (h *Handler) handleBoardsLoaded(msg boardsLoadedMsg) tea.Cmd {
	h.Loading = false
	h.Err = nil
	h.Boards = msg.boards
	h.clampCursor()

	// A board deleted behind our back may still be selected; selection must
	// always name a system board or a board in the collection.
	if id, ok := h.Store.Selection().BoardID(); ok && !board.IsSystemID(id) {
		found := false
		for _, b := range h.Boards {
			if b.ID == id {
				found = true
				break
			}
		}
		if !found {
			h.Store.ClearSelection()
		}
	}

	return nil
}

// moveCursor moves the grid cursor by delta within the filtered list.
func (h *Handler) moveCursor(delta int) {
	visible := h.VisibleBoards()
	if len(visible) == 0 {
		h.GridCursor = 0
		return
	}

	pos := h.GridCursor + delta
	if pos < 0 {
		pos = 0
	}
	if pos >= len(visible) {
		pos = len(visible) - 1
	}
	h.GridCursor = pos
}

func (h *Handler) clampCursor() {
	visible := h.VisibleBoards()
	if h.GridCursor >= len(visible) {
		h.GridCursor = len(visible) - 1
	}
	if h.GridCursor < 0 {
		h.GridCursor = 0
	}
}

// cursorBoard returns the board under the grid cursor, if any.
func (h *Handler) cursorBoard() (board.Board, bool) {
	visible := h.VisibleBoards()
	if len(visible) == 0 || h.GridCursor >= len(visible) {
		return board.Board{}, false
	}
	return visible[h.GridCursor], true
}
