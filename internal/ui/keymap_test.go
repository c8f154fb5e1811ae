package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_Matches(t *testing.T) {
	k := DefaultKeyMap()

	cases := []struct {
		key     string
		binding key.Binding
	}{
		{"j", k.Down},
		{"down", k.Down},
		{"k", k.Up},
		{"up", k.Up},
		{"g", k.Top},
		{"G", k.Bottom},
		{"enter", k.Click},
		{" ", k.Click},
		{"ctrl+b", k.ToggleSidebar},
		{"[", k.ToggleSidebar},
		{"tab", k.NextFocus},
		{"shift+tab", k.PrevFocus},
		{"q", k.Quit},
	}
	for _, tc := range cases {
		assert.True(t, key.Matches(keyMsg(tc.key), tc.binding), "key %q", tc.key)
	}
	assert.False(t, key.Matches(keyMsg("x"), k.Click))
}

func TestKeyMap_Help(t *testing.T) {
	k := DefaultKeyMap()
	assert.Len(t, k.ShortHelp(), 4)

	var n int
	for _, col := range k.FullHelp() {
		n += len(col)
	}
	assert.Equal(t, 9, n, "every binding appears in the full help")

	h := newHelp()
	assert.Contains(t, h.View(k), "open/select")
	assert.Equal(t, Styles.Hint.GetForeground(), h.Styles.ShortDesc.GetForeground())
}
