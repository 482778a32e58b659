package ui

import (
	"fmt"
	"strings"

	"gallerytui/internal/tui/styles"
)

// renderDeleteDialog renders the delete confirmation for the pending
// board.
func (r *Renderer) renderDeleteDialog() string {
	b, ok := r.PendingDelete.Board()
	if !ok {
		return ""
	}

	var s strings.Builder
	s.WriteString(styles.Title.Render("Delete Board") + "\n\n")
	s.WriteString(styles.DialogWarning.Render(fmt.Sprintf("Delete board %q?", b.Name)) + "\n")
	s.WriteString(styles.HelpDesc.Render("Its images will move to No Board.") + "\n\n")
	s.WriteString(styles.HelpDesc.Render("y: delete | n/esc: cancel"))

	return styles.Dialog.Render(s.String())
}

// renderNameDialog renders the create/rename input.
func (r *Renderer) renderNameDialog() string {
	title := "New Board"
	if r.IsRenaming {
		title = "Rename Board"
	}

	var s strings.Builder
	s.WriteString(styles.Title.Render(title) + "\n\n")
	s.WriteString(styles.InputLabel.Render("Name") + "\n")
	s.WriteString(r.NameInput.View() + "\n\n")
	s.WriteString(styles.HelpDesc.Render("Enter: save | Esc: cancel"))

	return styles.Dialog.Render(s.String())
}

// renderHelpDialog renders the keybinding overlay.
func (r *Renderer) renderHelpDialog() string {
	var s strings.Builder
	s.WriteString(styles.Title.Render("Keybindings") + "\n\n")

	for _, item := range r.Keymap.HelpItems() {
		s.WriteString(styles.HelpKey.Render(fmt.Sprintf("%-10s", item[0])))
		s.WriteString(" " + styles.HelpDesc.Render(item[1]) + "\n")
	}

	s.WriteString("\n" + styles.HelpDesc.Render("esc: close"))
	return styles.Dialog.Render(s.String())
}
