package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/profdir/internal/core/domain"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestSource_Load(t *testing.T) {
	src := NewSource(filepath.Join("testdata", "profiles.json"))

	profiles, err := src.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, profiles, 2)

	ana := profiles[0]
	assert.Equal(t, "1", ana.ID)
	assert.Equal(t, "Ana Silva", ana.Name)
	assert.Equal(t, []string{"JavaScript", "React", "CSS", "Testing Library"}, ana.Skills)
	require.Len(t, ana.Experiences, 1)
	assert.Equal(t, "Loja Azul", ana.Experiences[0].Employer)
	require.Len(t, ana.Education, 1)
	assert.Equal(t, "2020", ana.Education[0].Year)
	assert.Equal(t, []domain.Language{{Name: "English", Level: "Fluent"}}, ana.Languages)
	assert.Equal(t, "./assets/ana.jpg", ana.Photo)

	bruno := profiles[1]
	assert.Equal(t, "2", bruno.ID)
	assert.Empty(t, bruno.Projects)
	assert.Empty(t, bruno.Experiences)
	assert.Equal(t, "2018", bruno.Education[0].Year)
}

func TestSource_Load_ObjectForm(t *testing.T) {
	path := writeFile(t, `{"profiles": [{"id": "x", "name": "Xu"}]}`)

	profiles, err := NewSource(path).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Xu", profiles[0].Name)
}

func TestSource_Load_EmptyArray(t *testing.T) {
	path := writeFile(t, `[]`)

	profiles, err := NewSource(path).Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestSource_Load_MissingFile(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "absent.json"))

	_, err := src.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSource_Load_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"truncated", `[{"id": 1`},
		{"wrong id type", `[{"id": true}]`},
		{"not a list", `{"profiles": 3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)

			_, err := NewSource(path).Load(context.Background())

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSource_Load_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSource(filepath.Join("testdata", "profiles.json")).Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSource_LocationAndDir(t *testing.T) {
	src := NewSource("/data/team/profiles.json")

	assert.Equal(t, "/data/team/profiles.json", src.Location())
	assert.Equal(t, "/data/team", src.Dir())
}

func TestFlexString(t *testing.T) {
	tests := []struct {
		input    string
		expected FlexString
		wantErr  bool
	}{
		{`"abc"`, "abc", false},
		{`42`, "42", false},
		{`2020`, "2020", false},
		{`null`, "", false},
		{`[1]`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var f FlexString
			err := f.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestEncode_RoundTripsThroughDecode(t *testing.T) {
	profiles, err := NewSource(filepath.Join("testdata", "profiles.json")).Load(context.Background())
	require.NoError(t, err)

	data, err := Encode(profiles)
	require.NoError(t, err)
	records, err := Decode(data)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, profiles[0], records[0].ToDomain())
	assert.Equal(t, profiles[1], records[1].ToDomain())
}
