// Package help provides the keybinding overlay for the TUI.
package help

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/styles"
)

// View renders every keybinding in columns.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model
	width  int
	height int
	ready  bool
}

// NewView creates a new help view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	h := help.New()
	h.ShowAll = true

	v := &View{
		styles: s,
		keymap: km,
		help:   h,
		width:  80,
		height: 24,
	}
	v.Restyle()
	return v
}

// Restyle copies the current theme into the help model.
func (v *View) Restyle() {
	v.help.Styles.FullKey = v.styles.Selected
	v.help.Styles.FullDesc = v.styles.Normal
	v.help.Styles.FullSeparator = v.styles.Muted
	v.help.Styles.ShortKey = v.styles.Selected
	v.help.Styles.ShortDesc = v.styles.Normal
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view. Esc, "?" and "q" close it.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		keyStr := msg.String()
		if keymap.Matches(keyStr, v.keymap.Back) ||
			keymap.Matches(keyStr, v.keymap.Help) ||
			keyStr == "q" {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewDirectory}
			}
		}
	}

	return v, nil
}

// View renders the help view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Title.Render("Keyboard shortcuts"),
		"",
		v.help.View(v.keymap),
		"",
		v.styles.Help.Render("[esc] close"),
	)
	return v.styles.Modal.Render(body)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.help.Width = width - 6
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}
