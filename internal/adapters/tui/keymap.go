package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keys recognized during a session run. Everything
// else is ignored and treated as "no command this tick".
type keyMap struct {
	Quit  key.Binding
	Reset key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "reset timer"),
		),
	}
}
