package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Submit     key.Binding
	Open       key.Binding
	ToggleMode key.Binding
	Copy       key.Binding
	CycleTheme key.Binding
	Back       key.Binding
	Quit       key.Binding
	Help       key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f", " "),
			key.WithHelp("pgdn", "page down"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "analyze"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "choose pdf"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "multi-agent"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy questions"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp returns the bindings shown on the main screen footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.ToggleMode, k.Submit, k.Help, k.Quit}
}

// ReportHelp returns the bindings shown under the report
func (k KeyMap) ReportHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Copy, k.Open, k.ToggleMode, k.Submit, k.Quit}
}

// FullHelp returns every binding grouped for the help panel
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.ToggleMode, k.Submit},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Copy},
		{k.CycleTheme, k.Help, k.Back, k.Quit},
	}
}
