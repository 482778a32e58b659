package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"gallerytui/internal/board"
	"gallerytui/internal/tui/state"
	"gallerytui/internal/tui/styles"
	"gallerytui/internal/tui/utils"
)

// renderSearchRegion renders the area above the grid: the search input
// while searching, the system-board buttons otherwise. Never both.
func (r *Renderer) renderSearchRegion() string {
	if r.Mode == state.ModeSearching {
		return styles.InputLabel.Render("Search boards") + "\n" + r.SearchInput.View()
	}
	return r.renderSystemBoardRow()
}

// renderSystemBoardRow renders the three fixed pseudo-boards as buttons.
func (r *Renderer) renderSystemBoardRow() string {
	var buttons []string
	for _, b := range board.SystemBoards() {
		style := styles.SystemButton
		if r.Store.IsSelected(b.ID) {
			style = styles.SystemButtonActive
		}
		buttons = append(buttons, style.Render(b.Name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// renderBoardGrid renders the filtered boards as a grid of cells, in
// filter output order.
func (r *Renderer) renderBoardGrid() string {
	visible := r.VisibleBoards()

	if len(visible) == 0 {
		if len(r.Boards) == 0 {
			return styles.HelpDesc.Render("No boards yet. Press " + r.Keymap.NewBoard.Key + " to create one.")
		}
		return styles.HelpDesc.Render("No boards match " + fmt.Sprintf("%q", r.Store.SearchText()))
	}

	cols := r.GridColumns()
	var rows []string
	for start := 0; start < len(visible); start += cols {
		end := start + cols
		if end > len(visible) {
			end = len(visible)
		}

		var cells []string
		for i := start; i < end; i++ {
			cells = append(cells, r.renderBoardCell(visible[i], i == r.GridCursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderBoardCell renders one board. The active (selected) board and the
// cell under the cursor carry distinct borders.
func (r *Renderer) renderBoardCell(b board.Board, underCursor bool) string {
	// Inner width: outer cell minus border (2) and padding (2).
	innerWidth := state.GridCellWidth - 4

	name := utils.TruncateString(b.Name, innerWidth)
	count := "empty"
	if b.ImageCount == 1 {
		count = "1 image"
	} else if b.ImageCount > 1 {
		count = fmt.Sprintf("%d images", b.ImageCount)
	}

	content := utils.PadRight(name, innerWidth) + "\n" +
		styles.BoardCount.Render(utils.PadRight(count, innerWidth))

	style := styles.BoardCell
	if r.Store.IsSelected(b.ID) {
		style = styles.BoardCellActive
	}
	if underCursor {
		style = styles.BoardCellCursor
	}

	return style.Render(content)
}
