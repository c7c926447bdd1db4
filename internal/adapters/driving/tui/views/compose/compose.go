// Package compose provides the message form for the TUI.
package compose

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driving"
)

// Field identifies the focused form field.
type Field int

const (
	// FieldSubject is the single-line subject.
	FieldSubject Field = iota
	// FieldBody is the multi-line message body.
	FieldBody
)

// RequiredMessage is shown when a blank field blocks submission.
const RequiredMessage = "Subject and message are required."

// View is the message compose form. Every edit is mirrored into the
// page's draft so the page stays the single owner of the state.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	page    driving.PageController
	subject textinput.Model
	body    textarea.Model
	focus   Field
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a new compose view.
func NewView(s *styles.Styles, km *keymap.KeyMap, page driving.PageController) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	subject := textinput.New()
	subject.Placeholder = "Subject"
	subject.CharLimit = 0
	subject.Width = 50

	body := textarea.New()
	body.Placeholder = "Write your message..."
	body.ShowLineNumbers = false
	body.CharLimit = 0
	body.SetWidth(50)
	body.SetHeight(6)

	return &View{
		styles:  s,
		keymap:  km,
		page:    page,
		subject: subject,
		body:    body,
		width:   80,
		height:  24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Open loads the page's draft into the form and focuses the subject.
func (v *View) Open() tea.Cmd {
	v.err = nil
	if v.page != nil {
		draft := v.page.Draft()
		v.subject.SetValue(draft.Subject)
		v.body.SetValue(draft.Body)
	}
	return v.setFocus(FieldSubject)
}

// Reset clears the form.
func (v *View) Reset() {
	v.subject.Reset()
	v.body.Reset()
	v.err = nil
	v.setFocus(FieldSubject)
}

// SetError shows a submission error. The fields keep their values.
func (v *View) SetError(err error) {
	v.err = err
}

// Err returns the last submission error.
func (v *View) Err() error {
	return v.err
}

// Update handles messages for the compose view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, v.forward(msg)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ComposeCancelled{}
		}

	case keymap.Matches(keyStr, v.keymap.Send):
		return v, func() tea.Msg {
			return messages.MessageSubmitted{}
		}

	case keymap.Matches(keyStr, v.keymap.NextField):
		if v.focus == FieldSubject {
			return v, v.setFocus(FieldBody)
		}
		return v, v.setFocus(FieldSubject)
	}

	cmd := v.forward(msg)
	v.syncDraft()
	return v, cmd
}

// forward passes a message to the focused field.
func (v *View) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if v.focus == FieldSubject {
		v.subject, cmd = v.subject.Update(msg)
	} else {
		v.body, cmd = v.body.Update(msg)
	}
	return cmd
}

func (v *View) syncDraft() {
	if v.page == nil {
		return
	}
	v.page.SetSubject(v.subject.Value())
	v.page.SetBody(v.body.Value())
}

func (v *View) setFocus(f Field) tea.Cmd {
	v.focus = f
	if f == FieldSubject {
		v.body.Blur()
		return v.subject.Focus()
	}
	v.subject.Blur()
	return v.body.Focus()
}

// View renders the compose form.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	recipient := "-"
	if v.page != nil {
		if target := v.page.MessageTarget(); target != nil {
			recipient = target.Name
		}
	}

	sections := []string{
		v.styles.Title.Render("Message to " + recipient),
		"",
		v.label("Subject", FieldSubject),
		v.styles.InputField.Render(v.subject.View()),
		"",
		v.label("Message", FieldBody),
		v.body.View(),
	}

	if v.err != nil {
		sections = append(sections, "", v.styles.Error.Render(ErrorText(v.err)))
	}

	hints := strings.Join([]string{"[tab] next field", "[ctrl+s] send", "[esc] cancel"}, "  ")
	sections = append(sections, "", v.styles.Help.Render(hints))

	return v.styles.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (v *View) label(text string, f Field) string {
	if v.focus == f {
		return v.styles.Selected.Render(text)
	}
	return v.styles.Muted.Render(text)
}

// ErrorText maps a submission error to the text shown in the form.
func ErrorText(err error) string {
	if errors.Is(err, domain.ErrEmptyMessage) {
		return RequiredMessage
	}
	return "Error: " + err.Error()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	fieldWidth := width - 12
	if fieldWidth < 20 {
		fieldWidth = 20
	}
	v.subject.Width = fieldWidth
	v.body.SetWidth(fieldWidth)

	bodyHeight := height - 16
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	v.body.SetHeight(bodyHeight)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Focus returns the focused field.
func (v *View) Focus() Field {
	return v.focus
}

// Subject returns the subject field value.
func (v *View) Subject() string {
	return v.subject.Value()
}

// Body returns the body field value.
func (v *View) Body() string {
	return v.body.Value()
}
