package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	require.NotNil(t, km)

	assert.Contains(t, km.Quit.Keys(), "q")
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
	assert.Contains(t, km.Back.Keys(), "esc")
	assert.Contains(t, km.Send.Keys(), "enter")
	assert.Contains(t, km.Switch.Keys(), "tab")
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 3)
}

func TestKeyMap_ChatHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ChatHelp()
	require.Len(t, help, 3)
	assert.Equal(t, "enter", help[0].Help().Key)
}
