package tui

import "github.com/charmbracelet/bubbles/key"

// SessionKeyMap defines the key bindings for the area viewer.
type SessionKeyMap struct {
	Next    key.Binding
	Save    key.Binding
	Config  key.Binding
	Command key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SessionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Save, k.Config, k.Command, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SessionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Save, k.Config},
		{k.Command, k.Help, k.Quit},
	}
}

// DefaultSessionKeyMap returns default key bindings.
func DefaultSessionKeyMap() SessionKeyMap {
	return SessionKeyMap{
		Next: key.NewBinding(
			key.WithKeys("n", " "),
			key.WithHelp("n", "next area"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Config: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "config"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
