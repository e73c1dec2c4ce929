package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the search box key bindings
type KeyMap struct {
	Down   key.Binding // into the results, then next row
	Up     key.Binding
	Commit key.Binding
	Escape key.Binding
	Blur   key.Binding // move focus out of the search box
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap is the built-in key binding set
var DefaultKeyMap = KeyMap{
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "results"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous"),
	),
	Commit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "choose"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Blur: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "leave"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("F1", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Commit, k.Escape, k.Blur, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Commit},
		{k.Escape, k.Blur},
		{k.Help, k.Quit},
	}
}
