package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the fixed key bindings of the browser.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Activate key.Binding // Enter a folder or play a file
	Play     key.Binding // Restart playback of the selected file
	Quit     key.Binding
}

// DefaultKeyMap returns the browser bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("ENTER", "Enter Folder"),
		),
		Play: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("SPACE", "Play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("f10", "ctrl+c"),
			key.WithHelp("F10", "Quit"),
		),
	}
}

// ShortHelp implements help.KeyMap. Up/Down and PgUp/PgDn are shown as
// pairs.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Activate,
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("Up/Down", "Navigate")),
		key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("PgUp/PgDn", "Scroll")),
		k.Play,
		k.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Activate, k.Play, k.Quit},
	}
}
