package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/profdir/internal/core/domain"
)

func testProfiles() []domain.Profile {
	return []domain.Profile{
		{ID: "1", Name: "Ana Silva", Role: "Frontend Developer", Location: "São Paulo",
			Skills: []string{"JavaScript", "React", "CSS", "Jest", "Vite"}},
		{ID: "2", Name: "Bruno Costa", Role: "Designer", Location: "Recife", Skills: []string{"Figma"}},
		{ID: "3", Name: "Carla Dias", Role: "Backend Engineer", Location: "Natal"},
	}
}

func TestNewCardList(t *testing.T) {
	l := NewCardList(nil, nil)

	require.NotNil(t, l)
	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.SelectedProfile())
	assert.Equal(t, "", l.View())
}

func TestCardList_Navigation(t *testing.T) {
	l := NewCardList(nil, nil)
	l.SetProfiles(testProfiles())

	l.MoveUp()
	assert.Equal(t, 0, l.Selected())

	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, l.Selected())

	l.MoveDown()
	assert.Equal(t, 2, l.Selected())
	assert.Equal(t, "3", l.SelectedProfile().ID)

	l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, l.Selected())
}

func TestCardList_SetProfilesClampsSelection(t *testing.T) {
	l := NewCardList(nil, nil)
	l.SetProfiles(testProfiles())
	l.SetSelected(2)

	l.SetProfiles(testProfiles()[:1])
	assert.Equal(t, 0, l.Selected())

	l.SetProfiles(nil)
	assert.Equal(t, 0, l.Selected())
	assert.Nil(t, l.SelectedProfile())
}

func TestCardList_SetSelected_OutOfRange(t *testing.T) {
	l := NewCardList(nil, nil)
	l.SetProfiles(testProfiles())

	l.SetSelected(10)
	assert.Equal(t, 0, l.Selected())
	l.SetSelected(-1)
	assert.Equal(t, 0, l.Selected())
}

func TestCardList_View(t *testing.T) {
	l := NewCardList(nil, nil)
	l.SetDimensions(80, 40)
	l.SetProfiles(testProfiles())
	l.SetRecommended(func(id string) bool { return id == "2" })

	view := l.View()

	assert.Contains(t, view, "Ana Silva")
	assert.Contains(t, view, "Frontend Developer")
	assert.Contains(t, view, "JavaScript")
	assert.Contains(t, view, "+2")
	assert.NotContains(t, view, "Vite")
	assert.Contains(t, view, "São Paulo")
	assert.Contains(t, view, "★")
}

func TestCardList_View_ScrollsToSelection(t *testing.T) {
	l := NewCardList(nil, nil)
	l.SetDimensions(80, cardHeight)
	l.SetProfiles(testProfiles())
	l.SetSelected(2)

	view := l.View()

	assert.Contains(t, view, "Carla Dias")
	assert.NotContains(t, view, "Ana Silva")
}

func TestCardSkills(t *testing.T) {
	tests := []struct {
		name   string
		skills []string
		shown  []string
		rest   int
	}{
		{"none", nil, nil, 0},
		{"exactly three", []string{"a", "b", "c"}, []string{"a", "b", "c"}, 0},
		{"five", []string{"a", "b", "c", "d", "e"}, []string{"a", "b", "c"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shown, rest := CardSkills(tt.skills)
			assert.Equal(t, tt.shown, shown)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "São P...", Truncate("São Paulo Capital", 8))
	assert.Equal(t, "abc", Truncate("abc", 2))
}
