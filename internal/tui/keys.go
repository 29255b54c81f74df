package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Flip      key.Binding
	Add       key.Binding
	Next      key.Binding
	Prev      key.Binding
	Leave     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Flip:      key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "flip")),
		Add:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add card")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cards")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}
