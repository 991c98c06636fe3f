package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the console.
//
// View switching uses function keys so the bindings stay usable while a
// text field is focused in the Configuration view. Plain-letter keys
// (q, r, j, k, ?) are only honored in views without text input.
type KeyMap struct {
	// Views
	Edges         key.Binding
	Configuration key.Binding
	Sites         key.Binding
	NextView      key.Binding

	// List navigation
	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	// Configuration actions
	Load      key.Binding
	Save      key.Binding
	Token     key.Binding
	NextField key.Binding
	PrevField key.Binding

	// General
	Refresh   key.Binding
	Help      key.Binding
	Dismiss   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edges: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "edges"),
		),
		Configuration: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "configuration"),
		),
		Sites: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "sites"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show config"),
		),
		Load: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "load config"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save config"),
		),
		Token: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "generate token"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev field"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
