package store

import "testing"

func TestSelectionZeroValueIsAbsent(t *testing.T) {
	var s Selection
	if id, ok := s.BoardID(); ok || id != "" {
		t.Fatalf("zero Selection should be absent, got (%q, %v)", id, ok)
	}
	if s.Matches("") {
		t.Fatal("absent selection must not match any id")
	}
}

func TestStoreSelection(t *testing.T) {
	s := New()

	if _, ok := s.Selection().BoardID(); ok {
		t.Fatal("new store should have no selection")
	}

	s.Select("2")
	if !s.IsSelected("2") {
		t.Fatal("expected board 2 to be selected")
	}
	for _, other := range []string{"1", "3", ""} {
		if s.IsSelected(other) {
			t.Errorf("board %q should not be selected", other)
		}
	}

	s.Select("images")
	if s.IsSelected("2") {
		t.Fatal("selection should be exclusive")
	}
	if !s.IsSelected("images") {
		t.Fatal("expected images to be selected")
	}

	s.ClearSelection()
	if s.IsSelected("images") {
		t.Fatal("expected selection to be cleared")
	}
}

func TestStoreSearchText(t *testing.T) {
	s := New()
	if s.SearchText() != "" {
		t.Fatalf("default search text should be empty, got %q", s.SearchText())
	}

	s.SetSearchText("vac")
	if s.SearchText() != "vac" {
		t.Fatalf("expected %q, got %q", "vac", s.SearchText())
	}

	s.SetSearchText("")
	if s.SearchText() != "" {
		t.Fatal("expected search text to clear")
	}
}
