package ui

import (
	"github.com/charmbracelet/lipgloss"

	"gallerytui/internal/tui/state"
	"gallerytui/internal/tui/styles"
)

// Renderer draws the application from the shared state.
type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	header := styles.Title.Render("Boards")
	if r.Loading {
		header += " " + r.Spinner.View()
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		r.renderSearchRegion(),
		"",
		r.renderBoardGrid(),
	)

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		"",
		r.renderStatusBar(),
	)

	// Modal overlays, one at a time
	switch {
	case r.ShowHelp:
		return r.overlayContent(r.renderHelpDialog())
	case r.PendingDelete.Active():
		return r.overlayContent(r.renderDeleteDialog())
	case r.IsCreating, r.IsRenaming:
		return r.overlayContent(r.renderNameDialog())
	}

	return styles.App.Render(body)
}

// renderStatusBar renders the bottom line: errors win, then transient
// status, then a key hint.
func (r *Renderer) renderStatusBar() string {
	if r.Err != nil {
		return styles.StatusBarError.Render("Error: " + r.Err.Error())
	}
	if r.StatusMsg != "" {
		return styles.StatusBarSuccess.Render(r.StatusMsg)
	}

	hint := r.Keymap.Search.Key + ": search | " +
		r.Keymap.NewBoard.Key + ": new | " +
		r.Keymap.DeleteBoard.Key + ": delete | " +
		r.Keymap.Help.Key + ": help | " +
		r.Keymap.Quit.Key + ": quit"
	if query := r.Store.SearchText(); query != "" && r.Mode == state.ModeSystemBoards {
		hint = "filter: " + query + " | " + hint
	}
	return styles.StatusBar.Render(hint)
}

// overlayContent centers a dialog on the screen.
func (r *Renderer) overlayContent(dialog string) string {
	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, dialog)
}
