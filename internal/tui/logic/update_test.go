package logic

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gallerytui/internal/board"
	"gallerytui/internal/config"
	"gallerytui/internal/library"
	"gallerytui/internal/store"
	"gallerytui/internal/tui/state"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newTestHandler(t *testing.T, boards []board.Board) *Handler {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.UI.NotifyOnDelete = false // no desktop calls from tests

	lib := library.Open(filepath.Join(t.TempDir(), "boards.yaml"))
	if len(boards) > 0 {
		if err := lib.Save(boards); err != nil {
			t.Fatal(err)
		}
	}

	searchInput := textinput.New()
	searchInput.CharLimit = 100
	searchInput.Width = 40

	h := NewHandler(&state.State{
		Library:     lib,
		Store:       store.New(),
		Config:      cfg,
		Keymap:      state.DefaultKeymap(),
		Boards:      boards,
		SearchInput: searchInput,
		Width:       100,
		Height:      40,
	})
	return h
}

func testBoards() []board.Board {
	return []board.Board{
		{ID: "1", Name: "Vacation"},
		{ID: "2", Name: "Work"},
		{ID: "3", Name: "vac2"},
	}
}

func TestSelectBoardMarksOnlyThatBoard(t *testing.T) {
	h := newTestHandler(t, testBoards())
	h.GridCursor = 1

	h.Update(keyMsg("enter"))

	if !h.Store.IsSelected("2") {
		t.Fatal("expected board 2 to be selected")
	}
	for _, id := range []string{"1", "3"} {
		if h.Store.IsSelected(id) {
			t.Errorf("board %s should not be selected", id)
		}
	}
}

func TestSystemBoardKeys(t *testing.T) {
	h := newTestHandler(t, testBoards())

	h.Update(keyMsg("1"))
	if !h.Store.IsSelected(board.SystemImages) {
		t.Fatal("expected All Images selected")
	}

	h.Update(keyMsg("3"))
	if !h.Store.IsSelected(board.SystemNoBoard) {
		t.Fatal("expected No Board selected")
	}
	if h.Store.IsSelected(board.SystemImages) {
		t.Fatal("selection must be exclusive")
	}
}

func TestGridNavigationClampsToVisible(t *testing.T) {
	h := newTestHandler(t, testBoards())

	h.Update(keyMsg("l"))
	h.Update(keyMsg("l"))
	h.Update(keyMsg("l")) // past the end
	if h.GridCursor != 2 {
		t.Fatalf("expected cursor clamped to 2, got %d", h.GridCursor)
	}

	h.Update(keyMsg("h"))
	if h.GridCursor != 1 {
		t.Fatalf("expected cursor 1, got %d", h.GridCursor)
	}

	h.Update(keyMsg("k")) // full-row jump clamps at 0
	if h.GridCursor != 0 {
		t.Fatalf("expected cursor 0, got %d", h.GridCursor)
	}
}

func TestBoardsLoadedClampsCursor(t *testing.T) {
	h := newTestHandler(t, testBoards())
	h.GridCursor = 2

	h.Update(boardsLoadedMsg{boards: testBoards()[:1]})

	if h.GridCursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", h.GridCursor)
	}
	if len(h.Boards) != 1 {
		t.Fatalf("expected 1 board, got %d", len(h.Boards))
	}
}

func TestBoardsLoadedDropsStaleSelection(t *testing.T) {
	h := newTestHandler(t, testBoards())
	h.Store.Select("3")

	h.Update(boardsLoadedMsg{boards: testBoards()[:2]})

	if _, ok := h.Store.Selection().BoardID(); ok {
		t.Fatal("expected stale selection cleared")
	}

	// System board selections survive any reload.
	h.Store.Select(board.SystemAssets)
	h.Update(boardsLoadedMsg{boards: nil})
	if !h.Store.IsSelected(board.SystemAssets) {
		t.Fatal("system selection must survive reloads")
	}
}

func TestCreateBoardFlow(t *testing.T) {
	h := newTestHandler(t, nil)

	h.Update(keyMsg("n"))
	if !h.IsCreating {
		t.Fatal("expected create input to open")
	}

	for _, r := range "Portraits" {
		h.Update(keyMsg(string(r)))
	}
	cmd := h.Update(keyMsg("enter"))
	if h.IsCreating {
		t.Fatal("expected create input to close on enter")
	}
	if cmd == nil {
		t.Fatal("expected a create command")
	}

	msg := cmd()
	created, ok := msg.(boardCreatedMsg)
	if !ok {
		t.Fatalf("expected boardCreatedMsg, got %T", msg)
	}
	if created.board.Name != "Portraits" {
		t.Fatalf("expected name Portraits, got %q", created.board.Name)
	}

	h.Update(msg)
	if !h.Store.IsSelected(created.board.ID) {
		t.Fatal("expected the new board to become active")
	}
}

func TestCreateBoardEmptyNameCancels(t *testing.T) {
	h := newTestHandler(t, nil)

	h.Update(keyMsg("n"))
	if cmd := h.Update(keyMsg("enter")); cmd != nil {
		t.Fatal("empty name must not produce a command")
	}
	if h.IsCreating {
		t.Fatal("expected create input to close")
	}
}

func TestRenameBoardFlow(t *testing.T) {
	h := newTestHandler(t, testBoards())
	h.GridCursor = 0

	h.Update(keyMsg("e"))
	if !h.IsRenaming || h.RenamingID != "1" {
		t.Fatalf("expected rename of board 1, got renaming=%v id=%s", h.IsRenaming, h.RenamingID)
	}
	if h.NameInput.Value() != "Vacation" {
		t.Fatalf("expected input prefilled, got %q", h.NameInput.Value())
	}

	h.NameInput.SetValue("Vacation 2026")
	cmd := h.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected a rename command")
	}

	msg := cmd()
	renamed, ok := msg.(boardRenamedMsg)
	if !ok {
		t.Fatalf("expected boardRenamedMsg, got %T", msg)
	}
	if renamed.board.Name != "Vacation 2026" {
		t.Fatalf("unexpected name %q", renamed.board.Name)
	}
}

func TestEscapeCancelsNameInput(t *testing.T) {
	h := newTestHandler(t, testBoards())

	h.Update(keyMsg("e"))
	h.Update(keyMsg("esc"))
	if h.IsRenaming || h.RenamingID != "" {
		t.Fatal("expected rename cancelled")
	}
}
