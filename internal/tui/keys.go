package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Wallet key.Binding
	Menu   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Wallet: key.NewBinding(key.WithKeys("w", "enter"), key.WithHelp("w", "connect/disconnect")),
		Menu:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Wallet, k.Menu, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
