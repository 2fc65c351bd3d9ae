package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the launcher TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Quick launch
	Launch1 key.Binding
	Launch2 key.Binding
	Launch3 key.Binding

	// Actions
	Launch key.Binding
	Stop   key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
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
		Launch1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "teleoperation"),
		),
		Launch2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "record"),
		),
		Launch3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "replay"),
		),
		Launch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch"),
		),
		Stop: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter/s", "stop"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Launch, k.Stop, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Launch1, k.Launch2, k.Launch3},
		{k.Launch, k.Stop},
		{k.Help, k.Quit},
	}
}

// setMode enables only the bindings that act in the given mode. Disabled
// bindings neither match key presses nor appear in help.
func (k *KeyMap) setMode(mode viewMode) {
	idle := mode == modeIdle
	running := mode == modeRunning

	k.Up.SetEnabled(idle)
	k.Down.SetEnabled(idle)
	k.Launch1.SetEnabled(idle)
	k.Launch2.SetEnabled(idle)
	k.Launch3.SetEnabled(idle)
	k.Launch.SetEnabled(idle)
	k.Stop.SetEnabled(running)
	k.Help.SetEnabled(mode != modeConfigError)
}
