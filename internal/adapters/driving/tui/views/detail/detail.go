// Package detail provides the profile detail view for the TUI.
package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/components/avatar"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driving"
)

// RecommendedLabel replaces the recommend action once used.
const RecommendedLabel = "✓ Recommended"

// View is the profile detail view. Its content scrolls in a viewport.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	page     driving.PageController
	avatar   *avatar.Avatar
	viewport viewport.Model

	profile *domain.Profile
	width   int
	height  int
	ready   bool
}

// NewView creates a new detail view. The avatar is owned by the view:
// its failure memory is reset whenever the target profile changes.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	page driving.PageController,
	av *avatar.Avatar,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if av == nil {
		av = avatar.New(s, nil)
	}

	return &View{
		styles:   s,
		keymap:   km,
		page:     page,
		avatar:   av,
		viewport: viewport.New(80, 16),
		width:    80,
		height:   24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetProfile sets the profile to display. Nil clears the view.
func (v *View) SetProfile(p *domain.Profile) {
	if p == nil {
		v.profile = nil
		v.viewport.SetContent("")
		return
	}
	if v.profile == nil || v.profile.ID != p.ID {
		v.avatar.Reset()
	}
	profile := *p
	v.profile = &profile
	v.Refresh()
	v.viewport.GotoTop()
}

// Profile returns the displayed profile, or nil.
func (v *View) Profile() *domain.Profile {
	return v.profile
}

// Refresh re-renders the content, keeping the scroll position.
func (v *View) Refresh() {
	if v.profile == nil {
		return
	}
	v.viewport.SetContent(v.Content())
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.profile == nil {
		return v, nil
	}
	profile := *v.profile

	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.DetailClosed{}
		}

	case keymap.Matches(keyStr, v.keymap.Recommend):
		if v.isRecommended() {
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.RecommendRequested{Profile: profile}
		}

	case keymap.Matches(keyStr, v.keymap.Message):
		return v, func() tea.Msg {
			return messages.MessageRequested{Profile: profile}
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *View) isRecommended() bool {
	return v.page != nil && v.profile != nil && v.page.IsRecommended(v.profile.ID)
}

// Content builds the scrollable body: header, then each section in
// order. Optional sections are omitted when empty.
func (v *View) Content() string {
	p := v.profile
	if p == nil {
		return ""
	}

	lines := make([]string, 0, 40)
	lines = append(lines, v.styles.Subtitle.Render(p.Role))

	place := p.Location
	if p.Area != "" {
		place = fmt.Sprintf("%s | %s", p.Location, p.Area)
	}
	lines = append(lines, v.styles.Muted.Render("📍 "+place))

	if loc, ok := v.avatar.Photo(p); ok {
		lines = append(lines, v.styles.Muted.Render("Photo: "+loc))
	}
	if p.Summary != "" {
		lines = append(lines, "", v.wrap(p.Summary))
	}

	lines = v.appendChips(lines, "Technical Skills", p.Skills)
	lines = v.appendChips(lines, "Soft Skills", p.SoftSkills)

	if len(p.Experiences) > 0 {
		lines = append(lines, "", v.styles.Title.Render("Experience"))
		for _, e := range p.Experiences {
			lines = append(lines,
				v.styles.Normal.Bold(true).Render(e.Role+" - "+e.Employer),
				v.styles.Muted.Render(e.Start+" - "+e.End))
			if e.Description != "" {
				lines = append(lines, v.wrap(e.Description))
			}
		}
	}

	if len(p.Education) > 0 {
		lines = append(lines, "", v.styles.Title.Render("Education"))
		for _, e := range p.Education {
			lines = append(lines,
				v.styles.Normal.Bold(true).Render(e.Course),
				v.styles.Muted.Render(e.Institution+" - "+e.Year))
		}
	}

	if len(p.Projects) > 0 {
		lines = append(lines, "", v.styles.Title.Render("Projects"))
		for _, pr := range p.Projects {
			lines = append(lines, v.styles.Normal.Bold(true).Render(pr.Title))
			if pr.Link != "" {
				lines = append(lines, v.styles.Muted.Render(pr.Link))
			}
			if pr.Description != "" {
				lines = append(lines, v.wrap(pr.Description))
			}
		}
	}

	lines = v.appendBullets(lines, "Certifications", p.Certifications)

	if len(p.Languages) > 0 {
		lines = append(lines, "", v.styles.Title.Render("Languages"))
		for _, l := range p.Languages {
			lines = append(lines, v.styles.Normal.Render("• "+l.Name+" - "+l.Level))
		}
	}

	lines = v.appendChips(lines, "Interests", p.Interests)

	return strings.Join(lines, "\n")
}

func (v *View) appendChips(lines []string, title string, items []string) []string {
	if len(items) == 0 {
		return lines
	}
	chips := make([]string, 0, len(items))
	for _, item := range items {
		chips = append(chips, v.styles.Chip.Render(item))
	}
	return append(lines, "", v.styles.Title.Render(title), v.wrap(strings.Join(chips, " ")))
}

func (v *View) appendBullets(lines []string, title string, items []string) []string {
	if len(items) == 0 {
		return lines
	}
	lines = append(lines, "", v.styles.Title.Render(title))
	for _, item := range items {
		lines = append(lines, v.styles.Normal.Render("• "+item))
	}
	return lines
}

func (v *View) wrap(text string) string {
	width := v.viewport.Width
	if width < 20 {
		width = 20
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

// View renders the detail view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.profile == nil {
		return v.styles.Muted.Render("No profile selected")
	}

	header := v.avatar.Badge(v.profile) + " " + v.styles.Title.Render(v.profile.Name)
	separator := strings.Repeat("─", maxInt(v.viewport.Width, 10))

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		separator,
		v.viewport.View(),
		separator,
		v.renderActions(),
	)
	return v.styles.Modal.Render(body)
}

// renderActions renders the action footer.
func (v *View) renderActions() string {
	recommend := v.styles.Help.Render("[r] Recommend")
	if v.isRecommended() {
		recommend = v.styles.Success.Render(RecommendedLabel)
	}
	return strings.Join([]string{
		recommend,
		v.styles.Help.Render("[m] Send message"),
		v.styles.Help.Render("[esc] Close"),
	}, "  ")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Modal border and padding, header, separators and footer.
	v.viewport.Width = maxInt(width-8, 20)
	v.viewport.Height = maxInt(height-10, 3)
	v.Refresh()
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// ScrollOffset returns the viewport's vertical offset.
func (v *View) ScrollOffset() int {
	return v.viewport.YOffset
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
