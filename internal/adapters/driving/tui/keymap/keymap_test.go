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

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_DayBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.PrevDay.Keys(), "left")
	assert.Contains(t, km.PrevDay.Keys(), "h")
	assert.Contains(t, km.NextDay.Keys(), "right")
	assert.Contains(t, km.NextDay.Keys(), "l")
	assert.Contains(t, km.Today.Keys(), "t")
}

func TestDefaultKeyMap_ScrollBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Up.Keys(), "k")
	assert.Contains(t, km.Down.Keys(), "j")
	assert.Contains(t, km.PageUp.Keys(), "pgup")
	assert.Contains(t, km.PageDown.Keys(), "pgdown")
	assert.Contains(t, km.Top.Keys(), "g")
	assert.Contains(t, km.Bottom.Keys(), "G")
}

func TestDefaultKeyMap_NoScrollKeyClashesWithNavigation(t *testing.T) {
	km := DefaultKeyMap()

	scroll := []key.Binding{km.Up, km.Down, km.PageUp, km.PageDown, km.Top, km.Bottom}
	nav := []key.Binding{km.PrevDay, km.NextDay, km.Today, km.Hemisphere, km.Toggle, km.Quit, km.Help}
	for _, s := range scroll {
		for _, k := range s.Keys() {
			for _, n := range nav {
				assert.False(t, Matches(k, n), "key %q bound twice", k)
			}
		}
	}
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ShortHelp()

	require.Len(t, help, 5)
	assert.Equal(t, km.Quit.Keys(), help[len(help)-1].Keys())
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	groups := km.FullHelp()

	require.Len(t, groups, 3)
	for _, g := range groups {
		assert.NotEmpty(t, g)
	}
}

func TestMatches_True(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("tab", km.Toggle))
}

func TestMatches_False(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, Matches("x", km.Quit))
}

func TestBindings_HaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	for _, group := range km.FullHelp() {
		for _, b := range group {
			h := b.Help()
			assert.NotEmpty(t, h.Key)
			assert.NotEmpty(t, h.Desc)
		}
	}
}
