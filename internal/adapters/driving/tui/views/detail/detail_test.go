package detail

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/profdir/internal/adapters/driven/clock"
	"github.com/custodia-labs/profdir/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/components/avatar"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/profdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/services"
)

// countingResolver fails every reference and counts attempts.
type countingResolver struct {
	calls map[string]int
}

func (r *countingResolver) Resolve(ref string) (string, error) {
	r.calls[ref]++
	return "", errors.New("unreachable")
}

func fullProfile() domain.Profile {
	return domain.Profile{
		ID:         "1",
		Name:       "Ana Silva",
		Role:       "Frontend Developer",
		Summary:    "Builds accessible interfaces.",
		Location:   "São Paulo",
		Area:       "Tech",
		Skills:     []string{"JavaScript", "React"},
		SoftSkills: []string{"Communication"},
		Experiences: []domain.Experience{
			{Role: "Developer", Employer: "Acme", Start: "2020", End: "2023", Description: "Web apps."},
		},
		Education: []domain.Education{
			{Course: "Computer Science", Institution: "USP", Year: "2019"},
		},
		Projects:       []domain.Project{{Title: "Portfolio", Link: "https://ana.dev"}},
		Certifications: []string{"AWS Practitioner"},
		Languages:      []domain.Language{{Name: "English", Level: "Fluent"}},
		Interests:      []string{"Open source"},
		Photo:          "./assets/ana.jpg",
	}
}

func newTestView(t *testing.T) (*View, *services.Page, *countingResolver) {
	t.Helper()
	p := fullProfile()
	dir, err := services.NewDirectory([]domain.Profile{p, {ID: "2", Name: "Bruno Costa", Photo: "./b.png"}})
	require.NoError(t, err)

	c := clock.NewManual(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	page := services.NewPage(
		dir,
		services.NewRecommendations(memory.NewRecommendationStore()),
		services.NewNotifier(c, 0),
		services.NewComposer(memory.NewOutbox(), c),
	)

	s := styles.DefaultStyles()
	resolver := &countingResolver{calls: make(map[string]int)}
	view := NewView(s, nil, page, avatar.New(s, resolver))
	view.SetDimensions(100, 60)
	return view, page, resolver
}

func TestNewView_Defaults(t *testing.T) {
	view := NewView(nil, nil, nil, nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.NotNil(t, view.keymap)
	assert.False(t, view.Ready())
	assert.Nil(t, view.Profile())
	assert.Equal(t, "Initialising...", view.View())
}

func TestView_ContentSectionsInOrder(t *testing.T) {
	view, _, _ := newTestView(t)
	p := fullProfile()
	view.SetProfile(&p)

	content := view.Content()

	order := []string{
		"Frontend Developer",
		"São Paulo | Tech",
		"Builds accessible interfaces.",
		"Technical Skills", "JavaScript",
		"Soft Skills", "Communication",
		"Experience", "Developer - Acme", "2020 - 2023", "Web apps.",
		"Education", "Computer Science", "USP - 2019",
		"Projects", "Portfolio", "https://ana.dev",
		"Certifications", "AWS Practitioner",
		"Languages", "English - Fluent",
		"Interests", "Open source",
	}
	last := -1
	for _, want := range order {
		idx := strings.Index(content, want)
		require.GreaterOrEqual(t, idx, 0, "missing %q", want)
		assert.Greater(t, idx, last, "%q out of order", want)
		last = idx
	}
}

func TestView_OptionalSectionsOmitted(t *testing.T) {
	view, _, _ := newTestView(t)
	p := domain.Profile{ID: "2", Name: "Bruno Costa", Role: "Designer", Location: "Recife"}
	view.SetProfile(&p)

	content := view.Content()

	for _, title := range []string{"Projects", "Certifications", "Languages", "Interests", "Experience"} {
		assert.NotContains(t, content, title)
	}
	assert.Contains(t, content, "Recife")
}

func TestView_Recommend(t *testing.T) {
	view, page, _ := newTestView(t)
	p := fullProfile()
	view.SetProfile(&p)
	assert.Contains(t, view.View(), "[r] Recommend")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.RecommendRequested)
	require.True(t, ok)
	assert.Equal(t, "1", msg.Profile.ID)

	page.Recommend(msg.Profile)
	view.Refresh()

	assert.Contains(t, view.View(), RecommendedLabel)
	_, cmd = view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Nil(t, cmd, "recommend is inert once used")
}

func TestView_MessageAndClose(t *testing.T) {
	view, _, _ := newTestView(t)
	p := fullProfile()
	view.SetProfile(&p)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	require.NotNil(t, cmd)
	requested, ok := cmd().(messages.MessageRequested)
	require.True(t, ok)
	assert.Equal(t, "Ana Silva", requested.Profile.Name)

	_, cmd = view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.DetailClosed{}, cmd())
}

func TestView_KeysIgnoredWithoutProfile(t *testing.T) {
	view, _, _ := newTestView(t)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.Contains(t, view.View(), "No profile selected")
}

func TestView_PhotoFailureRememberedUntilTargetChanges(t *testing.T) {
	view, _, resolver := newTestView(t)
	ana := fullProfile()
	bruno := domain.Profile{ID: "2", Name: "Bruno Costa", Photo: "./b.png"}

	view.SetProfile(&ana)
	view.Refresh()
	_ = view.View()
	view.SetProfile(&ana)
	assert.Equal(t, 1, resolver.calls[ana.Photo], "same target is not retried")
	assert.Contains(t, view.View(), "AS")

	view.SetProfile(&bruno)
	view.SetProfile(&ana)
	assert.Equal(t, 2, resolver.calls[ana.Photo], "new target resets the memory")
}

func TestView_ScrollResetsOnNewProfile(t *testing.T) {
	view, _, _ := newTestView(t)
	view.SetDimensions(60, 14)
	p := fullProfile()
	view.SetProfile(&p)

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyDown})
	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Positive(t, view.ScrollOffset())

	other := domain.Profile{ID: "2", Name: "Bruno Costa"}
	view.SetProfile(&other)
	assert.Equal(t, 0, view.ScrollOffset())
}

func TestView_SetProfileCopies(t *testing.T) {
	view, _, _ := newTestView(t)
	p := fullProfile()
	view.SetProfile(&p)

	p.Name = "Changed"

	assert.Equal(t, "Ana Silva", view.Profile().Name)
}

func TestView_SetProfileNil(t *testing.T) {
	view, _, _ := newTestView(t)
	p := fullProfile()
	view.SetProfile(&p)

	view.SetProfile(nil)

	assert.Nil(t, view.Profile())
	assert.Empty(t, view.Content())
}
