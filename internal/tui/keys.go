package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	signUp    key.Binding
	logout    key.Binding
	copy      key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	esc:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	signUp:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "sign up")),
	logout:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "log out")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy board")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "version")),
}

func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " │ "
		}
		out += b.Help().Key + ": " + b.Help().Desc
	}
	return out
}
