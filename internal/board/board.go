// Package board defines the board domain model: named collections that
// group generated images, identified by a stable id.
package board

// System board IDs. These three pseudo-boards always exist and are never
// user-deletable.
const (
	SystemImages  = "images"
	SystemAssets  = "assets"
	SystemNoBoard = "no_board"
)

// Board is an immutable snapshot of a board as exposed by the library.
type Board struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	ImageCount int    `yaml:"image_count,omitempty"`
}

// SystemBoards returns the three fixed pseudo-boards in display order.
func SystemBoards() []Board {
	return []Board{
		{ID: SystemImages, Name: "All Images"},
		{ID: SystemAssets, Name: "All Assets"},
		{ID: SystemNoBoard, Name: "No Board"},
	}
}

// IsSystemID reports whether id names one of the fixed system boards.
func IsSystemID(id string) bool {
	switch id {
	case SystemImages, SystemAssets, SystemNoBoard:
		return true
	}
	return false
}
