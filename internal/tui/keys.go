package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Left, Right key.Binding
	Origin, Blocker       key.Binding
	Clear, Piece          key.Binding
	Switch, Export        key.Binding
	Help, Quit            key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Origin:  key.NewBinding(key.WithKeys("o", "enter"), key.WithHelp("o", "place slider")),
		Blocker: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle blocker")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear blockers")),
		Piece:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "bishop/rook/queen")),
		Switch:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "board/entry")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export svg")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Origin, k.Blocker, k.Piece, k.Switch, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Origin, k.Blocker, k.Clear, k.Piece},
		{k.Switch, k.Export, k.Help, k.Quit},
	}
}
