package logic

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gallerytui/internal/tui/state"
)

// toggleSearch flips the search region between the search input and the
// system-board buttons. It is the only way the region changes.
func (h *Handler) toggleSearch() tea.Cmd {
	h.Mode = h.Mode.Toggle()

	if h.Mode == state.ModeSearching {
		h.SearchInput.SetValue(h.Store.SearchText())
		h.SearchInput.Focus()
		return textinput.Blink
	}

	// The store keeps the search text; the grid stays filtered until the
	// user clears it.
	h.SearchInput.Blur()
	return nil
}

// handleSearchKeyMsg handles keyboard input while the search input is
// visible. Printable keys edit the query; the grid stays navigable.
func (h *Handler) handleSearchKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return h.toggleSearch()

	case "enter":
		return h.handleSelectBoard()

	case "up":
		h.moveCursor(-h.GridColumns())
		return nil
	case "down":
		h.moveCursor(h.GridColumns())
		return nil
	}

	// Update the input and delegate the new text to the store; the
	// filtered grid derives from the store on render.
	var cmd tea.Cmd
	h.SearchInput, cmd = h.SearchInput.Update(msg)
	if h.SearchInput.Value() != h.Store.SearchText() {
		h.Store.SetSearchText(h.SearchInput.Value())
		h.GridCursor = 0
	}
	return cmd
}
