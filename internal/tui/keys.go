package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	store    key.Binding
	reset    key.Binding
	resetAlt key.Binding
	copy     key.Binding
	newItem  key.Binding
	info     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("q")),
	store:    key.NewBinding(key.WithKeys("s")),
	reset:    key.NewBinding(key.WithKeys("r")),
	resetAlt: key.NewBinding(key.WithKeys("ctrl+r")),
	copy:     key.NewBinding(key.WithKeys("c")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	info:     key.NewBinding(key.WithKeys("v")),
}
