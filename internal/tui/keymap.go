package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keyboard shortcuts. View-local keys live in
// the components.
type KeyMap struct {
	Dashboard key.Binding
	Expenses  key.Binding
	Revenues  key.Binding
	Users     key.Binding
	Payments  key.Binding

	Refresh     key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		Expenses: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "expenses"),
		),
		Revenues: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "revenues"),
		),
		Users: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "users"),
		),
		Payments: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "payments"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "clear screen"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Refresh, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Dashboard, k.Expenses, k.Revenues, k.Users, k.Payments},
		{k.Refresh, k.ClearScreen},
		{k.Help, k.Quit},
	}
}
