package state

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the application.
type Keymap struct {
	// Navigation
	Up    Key
	Down  Key
	Left  Key
	Right Key

	// Actions
	Select  Key
	Back    Key
	Quit    Key
	Help    Key
	Refresh Key

	// Board actions
	NewBoard    Key
	RenameBoard Key
	DeleteBoard Key
	CopyID      Key

	// Search
	Search Key

	// System boards
	AllImages Key
	AllAssets Key
	NoBoard   Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:    Key{Key: "k", Help: "up"},
		Down:  Key{Key: "j", Help: "down"},
		Left:  Key{Key: "h", Help: "left"},
		Right: Key{Key: "l", Help: "right"},

		Select:  Key{Key: "enter", Help: "select board"},
		Back:    Key{Key: "esc", Help: "back"},
		Quit:    Key{Key: "q", Help: "quit"},
		Help:    Key{Key: "?", Help: "help"},
		Refresh: Key{Key: "r", Help: "refresh"},

		NewBoard:    Key{Key: "n", Help: "new board"},
		RenameBoard: Key{Key: "e", Help: "rename board"},
		DeleteBoard: Key{Key: "d", Help: "delete board"},
		CopyID:      Key{Key: "y", Help: "copy board id"},

		Search: Key{Key: "/", Help: "toggle search"},

		AllImages: Key{Key: "1", Help: "all images"},
		AllAssets: Key{Key: "2", Help: "all assets"},
		NoBoard:   Key{Key: "3", Help: "no board"},
	}
}

// HelpItems returns key/description pairs for the help overlay.
func (k Keymap) HelpItems() [][]string {
	return [][]string{
		{k.Down.Key + "/" + k.Up.Key, "move down/up"},
		{k.Left.Key + "/" + k.Right.Key, "move left/right"},
		{k.Select.Key, k.Select.Help},
		{k.Search.Key, k.Search.Help},
		{k.AllImages.Key + "/" + k.AllAssets.Key + "/" + k.NoBoard.Key, "select system board"},
		{k.NewBoard.Key, k.NewBoard.Help},
		{k.RenameBoard.Key, k.RenameBoard.Help},
		{k.DeleteBoard.Key, k.DeleteBoard.Help},
		{k.CopyID.Key, k.CopyID.Help},
		{k.Refresh.Key, k.Refresh.Help},
		{k.Help.Key, k.Help.Help},
		{k.Quit.Key, k.Quit.Help},
	}
}
