package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	tab     key.Binding
	backtab key.Binding
	enter   key.Binding
	quit    key.Binding

	switchMode key.Binding
	theme      key.Binding
	locale     key.Binding
	checkNow   key.Binding

	refresh key.Binding
	copy    key.Binding
	logout  key.Binding
}

var keys = keyMap{
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),

	switchMode: key.NewBinding(key.WithKeys("ctrl+a")),
	theme:      key.NewBinding(key.WithKeys("f2")),
	locale:     key.NewBinding(key.WithKeys("f3")),
	checkNow:   key.NewBinding(key.WithKeys("f5")),

	refresh: key.NewBinding(key.WithKeys("r")),
	copy:    key.NewBinding(key.WithKeys("c")),
	logout:  key.NewBinding(key.WithKeys("l")),
}
