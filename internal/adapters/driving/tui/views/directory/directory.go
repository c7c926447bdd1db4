// Package directory provides the searchable profile grid, the TUI's main view.
package directory

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/components/avatar"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driving"
)

// EmptyMessage is shown when no profile matches the active filters.
const EmptyMessage = "No profiles match your filters."

// View represents the directory view: search input, facet filters and
// the card list. It starts in browse mode; "/" moves focus to the input.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	page   driving.PageController
	input  *input.SearchInput
	list   *list.CardList

	width  int
	height int
	ready  bool
}

// NewView creates a new directory view.
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

	v := &View{
		styles: s,
		keymap: km,
		page:   page,
		list:   list.NewCardList(s, av),
		width:  80,
		height: 24,
	}
	v.input = input.NewSearchInput(s, v.applySearch)
	v.Refresh()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Refresh re-reads the visible profiles from the page.
func (v *View) Refresh() {
	if v.page == nil {
		return
	}
	v.list.SetProfiles(v.page.Visible())
	v.list.SetRecommended(v.page.IsRecommended)
}

// Update handles messages for the directory view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	if v.input.Focused() {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.page == nil {
		return v, nil
	}

	// Typing mode: esc and enter hand control back to the list.
	if v.input.Focused() {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			v.input.Blur()
			return v, nil
		}

		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Search):
		return v, v.input.Focus()

	case keymap.Matches(keyStr, v.keymap.Area):
		v.page.SetArea(NextOption(v.page.Facets().Areas, v.page.Criteria().Area))
		v.Refresh()

	case keymap.Matches(keyStr, v.keymap.City):
		v.page.SetCity(NextOption(v.page.Facets().Cities, v.page.Criteria().City))
		v.Refresh()

	case keymap.Matches(keyStr, v.keymap.Technology):
		v.page.SetTechnology(NextOption(v.page.Facets().Technologies, v.page.Criteria().Technology))
		v.Refresh()

	case keymap.Matches(keyStr, v.keymap.Clear):
		if v.page.HasActiveFilters() {
			v.page.ClearFilters()
			v.input.Clear()
			v.Refresh()
		}

	case keymap.Matches(keyStr, v.keymap.Select):
		if p := v.list.SelectedProfile(); p != nil {
			profile := *p
			return v, func() tea.Msg {
				return messages.ProfileOpened{Profile: profile}
			}
		}

	default:
		v.list, _ = v.list.Update(msg)
	}

	return v, nil
}

// applySearch narrows the list as the term is edited.
func (v *View) applySearch(term string) {
	if v.page == nil {
		return
	}
	v.page.SetSearch(term)
	v.Refresh()
}

// NextOption cycles a facet selection: "any", then each option in
// order, then back to "any". An unknown current value restarts at "any".
func NextOption(options []string, current string) string {
	if len(options) == 0 {
		return ""
	}
	if current == "" {
		return options[0]
	}
	for i, o := range options {
		if o == current {
			if i+1 < len(options) {
				return options[i+1]
			}
			return ""
		}
	}
	return ""
}

// View renders the directory view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.page == nil {
		return v.styles.Error.Render(ErrNoPage.Error())
	}

	sections := make([]string, 0, 10)

	title := v.styles.Title.Render("Profile Directory")
	subtitle := v.styles.Subtitle.Render(fmt.Sprintf("Explore %d profiles", v.page.Total()))
	sections = append(sections, title, subtitle, "")

	sections = append(sections, v.input.View(), v.renderFilters(), "")

	if v.list.IsEmpty() {
		sections = append(sections, v.styles.Muted.Render(EmptyMessage))
	} else {
		count := fmt.Sprintf("Showing %d of %d profiles", v.list.Count(), v.page.Total())
		sections = append(sections, v.styles.Muted.Render(count), v.list.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderFilters shows the three facet selections and the clear hint.
func (v *View) renderFilters() string {
	c := v.page.Criteria()
	parts := []string{
		v.renderFilter("a", "Area", c.Area),
		v.renderFilter("c", "City", c.City),
		v.renderFilter("t", "Technology", c.Technology),
	}
	if v.page.HasActiveFilters() {
		parts = append(parts, v.styles.Warning.Render("[x] Clear filters"))
	}
	return strings.Join(parts, "  ")
}

func (v *View) renderFilter(keyName, label, value string) string {
	if value == "" {
		return v.styles.Muted.Render(fmt.Sprintf("[%s] %s: All", keyName, label))
	}
	return v.styles.Selected.Render(fmt.Sprintf("[%s] %s: %s", keyName, label, value))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-9) // header, input, filters, count, status
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// InputFocused returns whether the search input has focus.
func (v *View) InputFocused() bool {
	return v.input.Focused()
}

// Query returns the search input value.
func (v *View) Query() string {
	return v.input.Value()
}

// Profiles returns the profiles currently listed.
func (v *View) Profiles() []domain.Profile {
	return v.list.Profiles()
}

// SelectedProfile returns the highlighted profile, or nil.
func (v *View) SelectedProfile() *domain.Profile {
	return v.list.SelectedProfile()
}
