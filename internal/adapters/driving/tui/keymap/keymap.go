// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back closes the current overlay.
	Back key.Binding

	// Search focuses the search input.
	Search key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select opens the highlighted profile.
	Select key.Binding

	// Area cycles the area filter.
	Area key.Binding

	// City cycles the city filter.
	City key.Binding

	// Technology cycles the technology filter.
	Technology key.Binding

	// Clear resets all filters.
	Clear key.Binding

	// Recommend recommends the open profile.
	Recommend key.Binding

	// Message opens the compose form.
	Message key.Binding

	// Theme toggles dark mode.
	Theme key.Binding

	// NextField moves focus in the compose form.
	NextField key.Binding

	// Send submits the compose form.
	Send key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view profile"),
		),
		Area: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "area"),
		),
		City: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "city"),
		),
		Technology: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "technology"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		Recommend: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recommend"),
		),
		Message: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "message"),
		),
		Theme: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark mode"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next field"),
		),
		Send: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// DirectoryHelp returns keybindings for the directory view.
func (k *KeyMap) DirectoryHelp() []key.Binding {
	return []key.Binding{k.Search, k.Area, k.City, k.Technology, k.Select, k.Help}
}

// DetailHelp returns keybindings for the profile detail view.
func (k *KeyMap) DetailHelp() []key.Binding {
	return []key.Binding{k.Recommend, k.Message, k.Up, k.Back}
}

// ComposeHelp returns keybindings for the compose form.
func (k *KeyMap) ComposeHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Send, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Search},
		{k.Area, k.City, k.Technology, k.Clear},
		{k.Recommend, k.Message, k.NextField, k.Send},
		{k.Theme, k.Back, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
