// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/components/avatar"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/profdir/internal/core/domain"
)

// MaxCardSkills is how many skill tags a card shows before "+N".
const MaxCardSkills = 3

// cardHeight is the rendered height of one card including its border.
const cardHeight = 7

// CardList displays profiles as a navigable column of cards.
type CardList struct {
	profiles    []domain.Profile
	selected    int
	styles      *styles.Styles
	avatar      *avatar.Avatar
	recommended func(id string) bool
	width       int
	height      int
}

// NewCardList creates a new card list component.
func NewCardList(s *styles.Styles, av *avatar.Avatar) *CardList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if av == nil {
		av = avatar.New(s, nil)
	}

	return &CardList{
		styles:      s,
		avatar:      av,
		recommended: func(string) bool { return false },
		width:       80,
		height:      20,
	}
}

// Init initialises the card list.
func (r *CardList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *CardList) Update(msg tea.Msg) (*CardList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the visible window of cards.
func (r *CardList) View() string {
	if len(r.profiles) == 0 {
		return ""
	}

	visibleCount := r.height / cardHeight
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.profiles) {
		end = len(r.profiles)
	}

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, r.renderCard(i, &r.profiles[i]))
	}
	return strings.Join(cards, "\n")
}

// renderCard formats one profile card.
func (r *CardList) renderCard(index int, p *domain.Profile) string {
	inner := r.width - 4
	if inner < 20 {
		inner = 20
	}

	name := r.styles.Title.Render(Truncate(p.Name, inner-8))
	if r.recommended(p.ID) {
		name += " " + r.styles.Warning.Render("★")
	}

	location := p.Location
	if location == "" {
		location = "-"
	}

	lines := []string{
		r.avatar.Badge(p) + " " + name,
		r.styles.Subtitle.Render(Truncate(p.Role, inner)),
		r.styles.Normal.Render(Truncate(p.Summary, inner)),
		r.renderSkills(p.Skills),
		r.styles.Muted.Render("📍 " + Truncate(location, inner-3)),
	}

	style := r.styles.Card
	if index == r.selected {
		style = r.styles.CardSelected
	}
	return style.Width(inner).Render(strings.Join(lines, "\n"))
}

// renderSkills shows the first few skills and a count of the rest.
func (r *CardList) renderSkills(skills []string) string {
	shown, rest := CardSkills(skills)
	tags := make([]string, 0, len(shown)+1)
	for _, s := range shown {
		tags = append(tags, r.styles.Chip.Render(s))
	}
	if rest > 0 {
		tags = append(tags, r.styles.Muted.Render(fmt.Sprintf("+%d", rest)))
	}
	return strings.Join(tags, " ")
}

// CardSkills splits skills into the ones shown on a card and the count
// of the remainder.
func CardSkills(skills []string) ([]string, int) {
	if len(skills) <= MaxCardSkills {
		return skills, 0
	}
	return skills[:MaxCardSkills], len(skills) - MaxCardSkills
}

// Truncate shortens s to at most max runes, ending with "...".
func Truncate(s string, max int) string {
	runes := []rune(s)
	if max < 4 || len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// SetProfiles updates the list, keeping the selection in range.
func (r *CardList) SetProfiles(profiles []domain.Profile) {
	r.profiles = profiles
	if r.selected >= len(profiles) {
		r.selected = len(profiles) - 1
	}
	if r.selected < 0 {
		r.selected = 0
	}
}

// SetRecommended sets the lookup used to mark recommended cards.
func (r *CardList) SetRecommended(fn func(id string) bool) {
	if fn != nil {
		r.recommended = fn
	}
}

// Profiles returns the current profiles.
func (r *CardList) Profiles() []domain.Profile {
	return r.profiles
}

// Selected returns the index of the selected card.
func (r *CardList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *CardList) SetSelected(index int) {
	if index >= 0 && index < len(r.profiles) {
		r.selected = index
	}
}

// SelectedProfile returns the highlighted profile, or nil if none.
func (r *CardList) SelectedProfile() *domain.Profile {
	if len(r.profiles) == 0 || r.selected < 0 || r.selected >= len(r.profiles) {
		return nil
	}
	return &r.profiles[r.selected]
}

// MoveUp moves selection up.
func (r *CardList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *CardList) MoveDown() {
	if r.selected < len(r.profiles)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *CardList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *CardList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *CardList) Height() int {
	return r.height
}

// Count returns the number of profiles.
func (r *CardList) Count() int {
	return len(r.profiles)
}

// IsEmpty returns whether the list is empty.
func (r *CardList) IsEmpty() bool {
	return len(r.profiles) == 0
}
