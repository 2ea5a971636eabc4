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
		{"Up", km.Up, []string{"up", "k"}},
		{"Down", km.Down, []string{"down", "j"}},
		{"PageUp", km.PageUp, []string{"pgup"}},
		{"PageDown", km.PageDown, []string{"pgdown", " "}},
		{"Top", km.Top, []string{"home", "g"}},
		{"Bottom", km.Bottom, []string{"end", "G"}},
		{"Open", km.Open, []string{"enter", "o"}},
		{"Copy", km.Copy, []string{"c"}},
		{"Details", km.Details, []string{"d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range tt.keys {
				assert.Contains(t, tt.binding.Keys(), k)
			}
			assert.NotEmpty(t, tt.binding.Help().Key, "binding should have help key")
			assert.NotEmpty(t, tt.binding.Help().Desc, "binding should have help text")
		})
	}
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	require.Len(t, bindings, 4)
	assert.Equal(t, km.Open, bindings[0])
	assert.Equal(t, km.Quit, bindings[3])
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 3)    // 3 groups
	assert.Len(t, bindings[0], 6) // navigation
	assert.Len(t, bindings[1], 3) // actions
	assert.Len(t, bindings[2], 3) // Back, Help, Quit
}

func TestMatches_True(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("?", km.Help))
	assert.True(t, Matches("G", km.Bottom))
	assert.True(t, Matches("o", km.Open))
}

func TestMatches_False(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("g", km.Bottom))
	assert.False(t, Matches("down", km.Up))
}

func TestBindings_NoOverlap(t *testing.T) {
	km := DefaultKeyMap()
	all := []key.Binding{
		km.Quit, km.Help, km.Back, km.Up, km.Down, km.PageUp,
		km.PageDown, km.Top, km.Bottom, km.Open, km.Copy, km.Details,
	}

	seen := make(map[string]string)
	for _, b := range all {
		for _, k := range b.Keys() {
			prev, dup := seen[k]
			assert.False(t, dup, "key %q bound to both %q and %q", k, prev, b.Help().Desc)
			seen[k] = b.Help().Desc
		}
	}
}
