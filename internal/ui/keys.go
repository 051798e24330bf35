package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	StartSplit key.Binding
	Pause      key.Binding
	Reset      key.Binding
	Undo       key.Binding
	Skip       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		StartSplit: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/split"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo split"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip split"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartSplit, k.Pause, k.Reset, k.Undo, k.Skip, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartSplit, k.Pause, k.Reset},
		{k.Undo, k.Skip, k.Quit},
	}
}
