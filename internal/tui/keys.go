package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	toggle    key.Binding
	quit      key.Binding
	forceQuit key.Binding
	logout    key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	refresh   key.Binding
	saveAll   key.Binding
	copy      key.Binding
	profile   key.Binding
	version   key.Binding
	authMode  key.Binding
	legacy    key.Binding
	yes       key.Binding
	no        key.Binding
}

// Screens with text inputs only react to non-printable keys; letters are
// bound on the list screen.
var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	toggle:    key.NewBinding(key.WithKeys(" ")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("l")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e", "enter")),
	delete:    key.NewBinding(key.WithKeys("d")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	saveAll:   key.NewBinding(key.WithKeys("S")),
	copy:      key.NewBinding(key.WithKeys("c")),
	profile:   key.NewBinding(key.WithKeys("p")),
	version:   key.NewBinding(key.WithKeys("v")),
	authMode:  key.NewBinding(key.WithKeys("ctrl+t")),
	legacy:    key.NewBinding(key.WithKeys("ctrl+l")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
