// Package store owns the UI-global state shared across views: the search
// text and the currently selected board. Views read snapshots and mutate
// only through the store's methods.
package store

// Selection identifies the active board, with an explicit absent variant.
// The zero value is "nothing selected".
type Selection struct {
	id string
	ok bool
}

// SelectBoard returns a Selection for the given board id.
func SelectBoard(id string) Selection {
	return Selection{id: id, ok: true}
}

// NoSelection returns the absent Selection.
func NoSelection() Selection {
	return Selection{}
}

// BoardID returns the selected board id, if any.
func (s Selection) BoardID() (string, bool) {
	return s.id, s.ok
}

// Matches reports whether the selection is present and equals id.
func (s Selection) Matches(id string) bool {
	return s.ok && s.id == id
}

// Store holds the shared UI state. All access happens on the Bubble Tea
// update loop, so no locking is needed.
type Store struct {
	searchText string
	selection  Selection
}

// New returns a Store with an empty search text and no selection.
func New() *Store {
	return &Store{}
}

// SearchText returns the current search text.
func (s *Store) SearchText() string {
	return s.searchText
}

// SetSearchText replaces the search text. The bound search input delegates
// every edit here; the filtered list is re-derived from this on render.
func (s *Store) SetSearchText(text string) {
	s.searchText = text
}

// Selection returns the current selection snapshot.
func (s *Store) Selection() Selection {
	return s.selection
}

// Select marks the board with the given id as active.
func (s *Store) Select(id string) {
	s.selection = SelectBoard(id)
}

// ClearSelection resets the selection to absent.
func (s *Store) ClearSelection() {
	s.selection = NoSelection()
}

// IsSelected reports whether the board with the given id is active.
func (s *Store) IsSelected(id string) bool {
	return s.selection.Matches(id)
}
