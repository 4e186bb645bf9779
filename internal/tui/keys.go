package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	sync     key.Binding
	upload   key.Binding
	download key.Binding
	cookies  key.Binding
	storage  key.Binding
	add      key.Binding
	history  key.Binding
	restore  key.Binding
	copy     key.Binding
	refresh  key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	sync:     key.NewBinding(key.WithKeys("s")),
	upload:   key.NewBinding(key.WithKeys("u")),
	download: key.NewBinding(key.WithKeys("d")),
	cookies:  key.NewBinding(key.WithKeys("c")),
	storage:  key.NewBinding(key.WithKeys("t")),
	add:      key.NewBinding(key.WithKeys("a")),
	history:  key.NewBinding(key.WithKeys("h")),
	restore:  key.NewBinding(key.WithKeys("r")),
	copy:     key.NewBinding(key.WithKeys("y")),
	refresh:  key.NewBinding(key.WithKeys("f")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
