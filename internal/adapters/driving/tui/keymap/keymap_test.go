package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Keys(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"Quit", km.Quit, []string{"q", "ctrl+c"}},
		{"Help", km.Help, []string{"?"}},
		{"Back", km.Back, []string{"esc"}},
		{"Search", km.Search, []string{"/"}},
		{"Up", km.Up, []string{"up", "k"}},
		{"Down", km.Down, []string{"down", "j"}},
		{"Select", km.Select, []string{"enter"}},
		{"Area", km.Area, []string{"a"}},
		{"City", km.City, []string{"c"}},
		{"Technology", km.Technology, []string{"t"}},
		{"Clear", km.Clear, []string{"x"}},
		{"Recommend", km.Recommend, []string{"r"}},
		{"Message", km.Message, []string{"m"}},
		{"Theme", km.Theme, []string{"d"}},
		{"NextField", km.NextField, []string{"tab", "shift+tab"}},
		{"Send", km.Send, []string{"ctrl+s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Key, "binding should have help key")
			assert.NotEmpty(t, tt.binding.Help().Desc, "binding should have help text")
		})
	}
}

func TestDefaultKeyMap_NoCommandKeyCollisions(t *testing.T) {
	km := DefaultKeyMap()
	commands := []key.Binding{
		km.Quit, km.Help, km.Search, km.Up, km.Down, km.Area, km.City,
		km.Technology, km.Clear, km.Recommend, km.Message, km.Theme,
	}

	seen := make(map[string]bool)
	for _, b := range commands {
		for _, k := range b.Keys() {
			assert.False(t, seen[k], "key %q bound twice", k)
			seen[k] = true
		}
	}
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	assert.Len(t, bindings, 2)
	assert.Equal(t, km.Quit, bindings[0])
	assert.Equal(t, km.Help, bindings[1])
}

func TestViewHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.DirectoryHelp(), km.Area)
	assert.Contains(t, km.DetailHelp(), km.Recommend)
	assert.Contains(t, km.ComposeHelp(), km.Send)
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 4)
	for _, group := range bindings {
		assert.Len(t, group, 4)
	}
}

func TestMatches_True(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("?", km.Help))
	assert.True(t, Matches("k", km.Up))
	assert.True(t, Matches("ctrl+s", km.Send))
}

func TestMatches_False(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("a", km.Help))
	assert.False(t, Matches("down", km.Up))
}
