package components

import "github.com/charmbracelet/bubbles/key"

// InputKeyMap defines key bindings shared by the text-entry components
type InputKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Escape key.Binding
	Tab    key.Binding
	Mode   key.Binding
}

// InputKeys are the bindings used by SignInModal, SearchBar and JumpPalette
var InputKeys = InputKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+j"),
		key.WithHelp("↓", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "next field"),
	),
	Mode: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("C-t", "sign in / sign up"),
	),
}
