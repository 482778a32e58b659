package state

import (
	"testing"

	"gallerytui/internal/board"
	"gallerytui/internal/store"
)

func TestSearchModeToggleIsInvolutive(t *testing.T) {
	for _, m := range []SearchMode{ModeSystemBoards, ModeSearching} {
		if m.Toggle() == m {
			t.Errorf("toggle from %v must change the mode", m)
		}
		if m.Toggle().Toggle() != m {
			t.Errorf("double toggle from %v must return to it", m)
		}
	}
}

func TestInitialModeShowsSystemBoards(t *testing.T) {
	var s State
	if s.Mode != ModeSystemBoards {
		t.Fatalf("initial mode should show system boards, got %v", s.Mode)
	}
}

func TestPendingDelete(t *testing.T) {
	var p PendingDelete

	if p.Active() {
		t.Fatal("zero value must be absent")
	}
	if _, ok := p.Board(); ok {
		t.Fatal("zero value must hold no board")
	}

	target := board.Board{ID: "4", Name: "Vacation"}
	p.Set(target)
	if !p.Active() {
		t.Fatal("expected pending delete after Set")
	}
	if b, ok := p.Board(); !ok || b != target {
		t.Fatalf("expected %v, got (%v, %v)", target, b, ok)
	}

	// Clearing resolves the dialog regardless of confirm/cancel outcome.
	p.Clear()
	if p.Active() {
		t.Fatal("expected pending delete cleared")
	}

	p.Clear() // clearing twice is fine
	if p.Active() {
		t.Fatal("expected pending delete to stay cleared")
	}
}

func TestVisibleBoardsRederivesFromStore(t *testing.T) {
	s := &State{
		Store: store.New(),
		Boards: []board.Board{
			{ID: "1", Name: "Vacation"},
			{ID: "2", Name: "Work"},
			{ID: "3", Name: "vac2"},
		},
	}

	visible := s.VisibleBoards()
	if len(visible) != 3 {
		t.Fatalf("empty query should show all boards, got %d", len(visible))
	}

	s.Store.SetSearchText("vac")
	visible = s.VisibleBoards()
	if len(visible) != 2 || visible[0].ID != "1" || visible[1].ID != "3" {
		t.Fatalf("expected [1 3], got %v", visible)
	}

	// An external refresh of the collection is visible immediately.
	s.Boards = append(s.Boards, board.Board{ID: "5", Name: "Vacations 2026"})
	visible = s.VisibleBoards()
	if len(visible) != 3 {
		t.Fatalf("expected re-derived list to include the new board, got %v", visible)
	}
}
