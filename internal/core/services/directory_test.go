package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/profdir/internal/core/domain"
)

// mockProfileSource implements driven.ProfileSource for testing.
type mockProfileSource struct {
	profiles []domain.Profile
	err      error
	loads    int
}

func (m *mockProfileSource) Load(_ context.Context) ([]domain.Profile, error) {
	m.loads++
	if m.err != nil {
		return nil, m.err
	}
	return m.profiles, nil
}

func (m *mockProfileSource) Location() string {
	return "mock://profiles"
}

func testProfiles() []domain.Profile {
	return []domain.Profile{
		{
			ID: "1", Name: "Ana Silva", Role: "Frontend Developer",
			Summary: "Builds accessible interfaces", Location: "São Paulo", Area: "Tech",
			Skills: []string{"JavaScript", "React", "CSS"},
		},
		{
			ID: "2", Name: "Bruno Costa", Role: "Product Designer",
			Summary: "Design systems and research", Location: "Recife", Area: "Design",
			Skills: []string{"Figma", "CSS"},
		},
		{
			ID: "3", Name: "Carla Dias", Role: "Backend Engineer",
			Summary: "APIs in Java and Go", Location: "São Paulo", Area: "Tech",
			Skills: []string{"Java", "Go", "PostgreSQL"},
		},
	}
}

func profileIDs(profiles []domain.Profile) []string {
	ids := make([]string, len(profiles))
	for i := range profiles {
		ids[i] = profiles[i].ID
	}
	return ids
}

func TestNewDirectory(t *testing.T) {
	dir, err := NewDirectory(testProfiles())

	require.NoError(t, err)
	assert.Equal(t, 3, dir.Count())
}

func TestNewDirectory_DuplicateIDs(t *testing.T) {
	profiles := testProfiles()
	profiles[2].ID = "1"

	_, err := NewDirectory(profiles)

	assert.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestLoadDirectory(t *testing.T) {
	source := &mockProfileSource{profiles: testProfiles()}

	dir, err := LoadDirectory(context.Background(), source)

	require.NoError(t, err)
	assert.Equal(t, 3, dir.Count())
	assert.Equal(t, 1, source.loads)
}

func TestLoadDirectory_SourceError(t *testing.T) {
	source := &mockProfileSource{err: errors.New("disk gone")}

	_, err := LoadDirectory(context.Background(), source)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mock://profiles")
	assert.Contains(t, err.Error(), "disk gone")
}

func TestDirectory_Reload_KeepsSnapshotOnError(t *testing.T) {
	dir, err := NewDirectory(testProfiles())
	require.NoError(t, err)

	err = dir.Reload(context.Background(), &mockProfileSource{err: errors.New("boom")})

	require.Error(t, err)
	assert.Equal(t, 3, dir.Count())
}

func TestDirectory_Replace_RecomputesFacets(t *testing.T) {
	dir, err := NewDirectory(testProfiles())
	require.NoError(t, err)

	err = dir.Replace([]domain.Profile{{ID: "9", Area: "Marketing", Location: "Natal", Skills: []string{"SEO"}}})

	require.NoError(t, err)
	facets := dir.Facets()
	assert.Equal(t, []string{"Marketing"}, facets.Areas)
	assert.Equal(t, []string{"Natal"}, facets.Cities)
	assert.Equal(t, []string{"SEO"}, facets.Technologies)
}

func TestDirectory_Replace_DoesNotAliasInput(t *testing.T) {
	profiles := testProfiles()
	dir, err := NewDirectory(profiles)
	require.NoError(t, err)

	profiles[0].Name = "Changed"

	p, err := dir.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", p.Name)
}

func TestDirectory_Get(t *testing.T) {
	dir, _ := NewDirectory(testProfiles())

	p, err := dir.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Bruno Costa", p.Name)

	_, err = dir.Get("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDirectory_Filter(t *testing.T) {
	dir, _ := NewDirectory(testProfiles())

	tests := []struct {
		name     string
		criteria domain.Criteria
		expected []string
	}{
		{"no criteria returns all", domain.Criteria{}, []string{"1", "2", "3"}},
		{"case insensitive name", domain.Criteria{Search: "ana"}, []string{"1"}},
		{"search in summary", domain.Criteria{Search: "JAVA"}, []string{"3"}},
		{"area", domain.Criteria{Area: "Tech"}, []string{"1", "3"}},
		{"city", domain.Criteria{City: "Recife"}, []string{"2"}},
		{"technology substring matches JavaScript and Java", domain.Criteria{Technology: "java"}, []string{"1", "3"}},
		{"shared technology", domain.Criteria{Technology: "css"}, []string{"1", "2"}},
		{"combined", domain.Criteria{Area: "Tech", City: "São Paulo", Technology: "go"}, []string{"3"}},
		{"no match", domain.Criteria{Area: "Design", City: "São Paulo"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := profileIDs(dir.Filter(tt.criteria))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterProfiles_SubsetPreservesOrder(t *testing.T) {
	profiles := testProfiles()
	criteria := []domain.Criteria{
		{}, {Search: "a"}, {Area: "Tech"}, {Technology: "s"}, {City: "São Paulo", Search: "e"},
	}

	for _, c := range criteria {
		got := FilterProfiles(profiles, c)
		// Every result appears in the source, and in increasing source position.
		last := -1
		for _, p := range got {
			pos := -1
			for i := range profiles {
				if profiles[i].ID == p.ID {
					pos = i
				}
			}
			require.NotEqual(t, -1, pos)
			assert.Greater(t, pos, last)
			last = pos
		}
	}
}

func TestFilterProfiles_Idempotent(t *testing.T) {
	profiles := testProfiles()
	c := domain.Criteria{Area: "Tech", Technology: "a"}

	once := FilterProfiles(profiles, c)
	twice := FilterProfiles(once, c)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("filtering twice changed the result (-once +twice):\n%s", diff)
	}
}

func TestFilterProfiles_EmptyCollection(t *testing.T) {
	got := FilterProfiles(nil, domain.Criteria{Search: "x", Area: "Tech"})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDeriveFacets(t *testing.T) {
	facets := DeriveFacets(testProfiles())

	want := domain.Facets{
		Areas:        []string{"Design", "Tech"},
		Cities:       []string{"Recife", "São Paulo"},
		Technologies: []string{"CSS", "Figma", "Go", "Java", "JavaScript", "PostgreSQL", "React"},
	}
	if diff := cmp.Diff(want, facets); diff != "" {
		t.Errorf("DeriveFacets() mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveFacets_AreasExample(t *testing.T) {
	profiles := []domain.Profile{{Area: "Tech"}, {Area: "Design"}, {Area: "Tech"}}

	assert.Equal(t, []string{"Design", "Tech"}, DeriveFacets(profiles).Areas)
}

func TestDeriveFacets_Empty(t *testing.T) {
	facets := DeriveFacets(nil)

	assert.Empty(t, facets.Areas)
	assert.Empty(t, facets.Cities)
	assert.Empty(t, facets.Technologies)
}

func TestDirectory_Facets_ReturnsCopy(t *testing.T) {
	dir, _ := NewDirectory(testProfiles())

	facets := dir.Facets()
	facets.Areas[0] = "Mutated"

	assert.Equal(t, "Design", dir.Facets().Areas[0])
}
