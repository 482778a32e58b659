// Package library is the board collection source: it owns the workspace's
// board library file and performs all board mutations. The TUI only reads
// snapshots from it and requests mutations.
package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"gallerytui/internal/board"
)

// Common errors.
var (
	ErrNotFound    = errors.New("board not found")
	ErrSystemBoard = errors.New("system boards cannot be modified")
	ErrEmptyName   = errors.New("board name is empty")
)

// Library reads and writes the board library file. Boards keep the order
// they have in the file.
type Library struct {
	path string
}

// Open returns a Library backed by the given file path. The file does not
// need to exist yet.
func Open(path string) *Library {
	return &Library{path: path}
}

// Path returns the library file path.
func (l *Library) Path() string {
	return l.path
}

// libraryFile is the on-disk format.
type libraryFile struct {
	Boards []board.Board `yaml:"boards"`
}

// Load reads all boards in file order. A missing file means "no boards
// yet" and returns an empty collection, not an error.
func (l *Library) Load() ([]board.Board, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read board library: %w", err)
	}

	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse board library: %w", err)
	}

	return file.Boards, nil
}

// Save writes the given boards to the library file, creating parent
// directories as needed.
func (l *Library) Save(boards []board.Board) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}

	data, err := yaml.Marshal(libraryFile{Boards: boards})
	if err != nil {
		return fmt.Errorf("failed to serialize board library: %w", err)
	}

	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write board library: %w", err)
	}

	return nil
}

// Create appends a new board with the given name and returns it.
func (l *Library) Create(name string) (board.Board, error) {
	if name == "" {
		return board.Board{}, ErrEmptyName
	}

	boards, err := l.Load()
	if err != nil {
		return board.Board{}, err
	}

	b := board.Board{ID: uuid.NewString(), Name: name}
	boards = append(boards, b)

	if err := l.Save(boards); err != nil {
		return board.Board{}, err
	}
	return b, nil
}

// Rename changes the name of the board with the given id.
func (l *Library) Rename(id, name string) (board.Board, error) {
	if board.IsSystemID(id) {
		return board.Board{}, ErrSystemBoard
	}
	if name == "" {
		return board.Board{}, ErrEmptyName
	}

	boards, err := l.Load()
	if err != nil {
		return board.Board{}, err
	}

	for i := range boards {
		if boards[i].ID == id {
			boards[i].Name = name
			if err := l.Save(boards); err != nil {
				return board.Board{}, err
			}
			return boards[i], nil
		}
	}

	return board.Board{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Delete removes the board with the given id. System boards are refused.
func (l *Library) Delete(id string) error {
	if board.IsSystemID(id) {
		return ErrSystemBoard
	}

	boards, err := l.Load()
	if err != nil {
		return err
	}

	for i := range boards {
		if boards[i].ID == id {
			boards = append(boards[:i], boards[i+1:]...)
			return l.Save(boards)
		}
	}

	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
