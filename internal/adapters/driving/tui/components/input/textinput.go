// Package input provides the profile search field.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/styles"
)

const (
	label       = "Search: "
	editingHint = "enter/esc to finish"
	minWidth    = 20
)

// SearchInput is the free-text search field. It starts blurred so the
// directory's single-key commands work until "/" focuses it, and reports
// every edit of the term through the change callback.
type SearchInput struct {
	field    textinput.Model
	styles   *styles.Styles
	onChange func(term string)
	width    int
}

// NewSearchInput creates the search field. onChange may be nil.
func NewSearchInput(s *styles.Styles, onChange func(term string)) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	field := textinput.New()
	field.Placeholder = "name, role or summary"
	field.CharLimit = 120
	field.Prompt = ""

	in := &SearchInput{field: field, styles: s, onChange: onChange}
	in.SetWidth(50)
	return in
}

// Update feeds msg to the field and calls the change callback when the
// term differs afterwards. A blurred field ignores key input.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	before := s.field.Value()

	var cmd tea.Cmd
	s.field, cmd = s.field.Update(msg)

	if after := s.field.Value(); after != before && s.onChange != nil {
		s.onChange(after)
	}
	return s, cmd
}

// View renders the label, the field and, while editing, a hint.
func (s *SearchInput) View() string {
	if !s.Focused() {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			s.styles.Muted.Render(label),
			s.styles.InputField.Render(s.field.View()),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.styles.Title.Render(label),
		s.styles.InputField.Render(s.field.View()),
		" ",
		s.styles.Muted.Render(editingHint),
	)
}

// Value returns the current term.
func (s *SearchInput) Value() string {
	return s.field.Value()
}

// Clear empties the field without calling the change callback; the
// caller resets the criteria itself.
func (s *SearchInput) Clear() {
	s.field.Reset()
}

// Focus starts editing and returns the cursor blink command.
func (s *SearchInput) Focus() tea.Cmd {
	return s.field.Focus()
}

// Blur stops editing.
func (s *SearchInput) Blur() {
	s.field.Blur()
}

// Focused reports whether the field is being edited.
func (s *SearchInput) Focused() bool {
	return s.field.Focused()
}

// SetWidth fits the field into width columns, leaving room for the
// label and the hint.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	fieldWidth := width - len(label) - len(editingHint) - 4
	if fieldWidth < minWidth {
		fieldWidth = minWidth
	}
	s.field.Width = fieldWidth
}
