package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	Focus        key.Binding
	Open         key.Binding
	Collapse     key.Binding
	Expand       key.Binding
	Select       key.Binding
	Clear        key.Binding
	Search       key.Binding
	Find         key.Binding
	Sort         key.Binding
	AddVideo     key.Binding
	AddMedia     key.Binding
	NewFolder    key.Binding
	Rename       key.Binding
	Delete       key.Binding
	Move         key.Binding
	YankURL      key.Binding
	Browser      key.Binding
	Subtitles    key.Binding
	ShowSubs     key.Binding
	RemoveSubs   key.Binding
	Status       key.Binding
	Edit         key.Binding
	PrevCategory key.Binding
	NextCategory key.Binding
	Bookmarks    key.Binding
	MediaLog     key.Binding
	Theme        key.Binding
	Display      key.Binding
	Refresh      key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "collapse"),
		),
		Expand: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "expand"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "v"),
			key.WithHelp("space/v", "select"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Find: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "find anywhere"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "cycle sort"),
		),
		AddVideo: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add video"),
		),
		AddMedia: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "add media"),
		),
		NewFolder: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new folder"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename folder"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Move: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move to folder"),
		),
		YankURL: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank URL"),
		),
		Browser: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "open in browser"),
		),
		Subtitles: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upload SRT"),
		),
		ShowSubs: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "view SRT"),
		),
		RemoveSubs: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete SRT"),
		),
		Status: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle status"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev category"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next category"),
		),
		Bookmarks: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "bookmarks"),
		),
		MediaLog: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "media log"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Display: key.NewBinding(
			key.WithKeys("V"),
			key.WithHelp("V", "card/list"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
