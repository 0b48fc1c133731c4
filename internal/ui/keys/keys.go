// Package keys defines keyboard shortcuts for the ProxyRun TUI.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Tab      key.Binding
	ShiftTab key.Binding

	// Actions
	Select   key.Binding
	Launch   key.Binding
	Refresh  key.Binding
	Endpoint key.Binding
	Save     key.Binding
	Update   key.Binding
	Delete   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keyboard shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev pane"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select/load"),
		),
		Launch: key.NewBinding(
			key.WithKeys("L", "ctrl+l"),
			key.WithHelp("L", "launch with proxy"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh processes"),
		),
		Endpoint: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit endpoint"),
		),
		Save: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add profile"),
		),
		Update: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "update profile"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete profile"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns short help text for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Tab,
		k.Select,
		k.Launch,
		k.Refresh,
		k.Endpoint,
		k.Save,
		k.Delete,
		k.Quit,
	}
}

// FullHelp returns complete help text.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab, k.ShiftTab},
		{k.Select, k.Launch, k.Refresh, k.Endpoint},
		{k.Save, k.Update, k.Delete, k.Quit},
	}
}
