package logic

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// handleSelectBoard marks the board under the cursor as the active board.
func (h *Handler) handleSelectBoard() tea.Cmd {
	b, ok := h.cursorBoard()
	if !ok {
		return nil
	}
	h.Store.Select(b.ID)
	h.StatusMsg = "Selected board: " + b.Name
	return nil
}

// selectSystemBoard marks one of the fixed pseudo-boards as active.
func (h *Handler) selectSystemBoard(id string) tea.Cmd {
	h.Store.Select(id)
	return nil
}

// handleNewBoard opens the board creation input.
func (h *Handler) handleNewBoard() tea.Cmd {
	h.NameInput = textinput.New()
	h.NameInput.Placeholder = "Enter board name..."
	h.NameInput.CharLimit = 100
	h.NameInput.Width = 40
	h.NameInput.Focus()
	h.IsCreating = true
	return textinput.Blink
}

// handleRenameBoard opens the rename input for the board under the cursor.
func (h *Handler) handleRenameBoard() tea.Cmd {
	b, ok := h.cursorBoard()
	if !ok {
		return nil
	}

	h.NameInput = textinput.New()
	h.NameInput.CharLimit = 100
	h.NameInput.Width = 40
	h.NameInput.SetValue(b.Name)
	h.NameInput.Focus()
	h.IsRenaming = true
	h.RenamingID = b.ID
	return textinput.Blink
}

// handleRequestDelete opens the delete confirmation for the board under
// the cursor. The grid only ever holds user boards, so system boards can
// never reach this.
func (h *Handler) handleRequestDelete() tea.Cmd {
	b, ok := h.cursorBoard()
	if !ok {
		return nil
	}
	h.PendingDelete.Set(b)
	return nil
}

// handleCopyID copies the id of the board under the cursor to the
// clipboard.
func (h *Handler) handleCopyID() tea.Cmd {
	b, ok := h.cursorBoard()
	if !ok {
		return nil
	}
	return h.copyBoardID(b.ID)
}

// handleNameInputKeyMsg handles keyboard input during board creation or
// renaming.
func (h *Handler) handleNameInputKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		h.IsCreating = false
		h.IsRenaming = false
		h.RenamingID = ""
		h.NameInput.Reset()
		return nil

	case "enter":
		name := strings.TrimSpace(h.NameInput.Value())
		creating := h.IsCreating
		renamingID := h.RenamingID

		h.IsCreating = false
		h.IsRenaming = false
		h.RenamingID = ""
		h.NameInput.Reset()

		if name == "" {
			return nil
		}

		h.Loading = true
		if creating {
			return h.createBoard(name)
		}
		return h.renameBoard(renamingID, name)

	default:
		// Update text input
		var cmd tea.Cmd
		h.NameInput, cmd = h.NameInput.Update(msg)
		return cmd
	}
}

// handleDeleteConfirmKeyMsg handles y/n/esc during delete confirmation.
// The pending reference is cleared on every outcome.
func (h *Handler) handleDeleteConfirmKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		b, ok := h.PendingDelete.Board()
		h.PendingDelete.Clear()
		if !ok {
			return nil
		}

		h.Loading = true
		return h.deleteBoard(b.ID, b.Name)

	case "n", "N", "esc":
		h.PendingDelete.Clear()
		return nil

	default:
		return nil
	}
}
