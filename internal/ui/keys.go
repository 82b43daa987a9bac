package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Architecture levels
	SelectLevel key.Binding
	PrevLevel   key.Binding
	NextLevel   key.Binding

	// Case gallery
	NextCase key.Binding
	PrevCase key.Binding
	OpenCase key.Binding
	Dismiss  key.Binding

	// Scrolling
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		SelectLevel: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "Select level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("h/left", "Previous level"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("l/right", "Next level"),
		),

		NextCase: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next case"),
		),
		PrevCase: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous case"),
		),
		OpenCase: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open case"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc/x", "Close case"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d", " "),
			key.WithHelp("pgdown", "Page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SelectLevel, k.NextCase, k.OpenCase, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SelectLevel, k.PrevLevel, k.NextLevel},
		{k.NextCase, k.PrevCase, k.OpenCase, k.Dismiss},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
