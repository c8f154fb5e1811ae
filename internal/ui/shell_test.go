package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternui/internal/panel"
)

func newTestShell(t *testing.T, opts ...Option) (*ShellView[route, struct{}], *ContentView) {
	t.Helper()
	content := NewContentView("Welcome page")
	s := NewShellView(NewProvider(referenceTree(true, false), opts...), nil, content)
	s.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return s, content
}

func TestShellView_ToggleButtonHidesAndRestores(t *testing.T) {
	s, _ := newTestShell(t, WithToggleButton(true))
	p := s.Provider
	require.True(t, p.SelectTile(1))
	require.True(t, p.ToggleBranch("dropdownTest"))
	assert.Equal(t, DefaultSidebarWidth, s.Sidebar.Width())

	s.Update(keyMsg("ctrl+b"))
	assert.True(t, p.Toggled())
	assert.Zero(t, s.Sidebar.Width())
	assert.Equal(t, []string{RegionContent}, s.FocusOrder())
	assert.Equal(t, RegionContent, s.Focus.Current)
	assert.NotContains(t, s.View(), "Dropdown")

	_, _, w, _ := s.Regions()[1].Bounds(100, 30)
	assert.Equal(t, 100, w, "content takes the full width")

	s.Update(keyMsg("ctrl+b"))
	assert.False(t, p.Toggled())
	assert.Equal(t, DefaultSidebarWidth, s.Sidebar.Width())
	assert.True(t, p.IsOpen(panel.Path{1, 1}), "branch state survives the toggle")
	assert.Equal(t, panel.Path{0, 0}, p.ActivePath())
	assert.Contains(t, s.View(), "Dropdown")
}

func TestShellView_RailMode(t *testing.T) {
	s, _ := newTestShell(t)

	s.ToggleSidebar()
	assert.Equal(t, TileColumnWidth, s.Sidebar.Width())
	assert.Equal(t, []string{RegionSidebar, RegionContent}, s.FocusOrder())
	assert.Equal(t, RegionSidebar, s.Focus.Current)

	out := s.View()
	assert.Contains(t, out, "»")
	assert.Contains(t, out, "Welcome page")
}

func TestShellView_Regions(t *testing.T) {
	s, _ := newTestShell(t, WithToggleButton(true))

	regions := s.Regions()
	require.Len(t, regions, 2)
	assert.Equal(t, RegionSidebar, regions[0].ID)

	x, y, w, h := regions[1].Bounds(100, 30)
	assert.Equal(t, []int{DefaultSidebarWidth, 1, 100 - DefaultSidebarWidth, 28}, []int{x, y, w, h})
}

func TestShellView_FocusRotation(t *testing.T) {
	s, _ := newTestShell(t)
	assert.Equal(t, RegionSidebar, s.Focus.Current)

	s.Update(keyMsg("tab"))
	assert.Equal(t, RegionContent, s.Focus.Current)
	s.Update(keyMsg("j"))
	assert.Equal(t, 0, s.Sidebar.Cursor(), "keys go to the focused region only")

	s.Update(keyMsg("shift+tab"))
	assert.Equal(t, RegionSidebar, s.Focus.Current)
	s.Update(keyMsg("j"))
	assert.Equal(t, 1, s.Sidebar.Cursor())
}

func TestShellView_SelectionUpdatesContent(t *testing.T) {
	s, content := newTestShell(t)
	require.True(t, s.Provider.SelectTile(1))

	s.Update(keyMsg("G")) // dropdown branch
	s.Update(keyMsg("enter"))
	s.Update(keyMsg("G")) // last dropdown entry
	_, cmd := s.Update(keyMsg("enter"))

	msg := runCmd(cmd)
	require.IsType(t, SelectedMsg{}, msg)
	s.Update(msg)
	assert.Equal(t, "dropdown-test2", content.Text())
}

func TestShellView_CustomPage(t *testing.T) {
	s, content := newTestShell(t)
	content.Page = func(msg SelectedMsg) string { return "page " + msg.IDPath }

	s.Update(SelectedMsg{ID: "home", IDPath: "home/home"})
	assert.Equal(t, "page home/home", content.Text())
}

func TestShellView_Quit(t *testing.T) {
	s, _ := newTestShell(t)
	_, cmd := s.Update(keyMsg("q"))
	assert.IsType(t, tea.QuitMsg{}, runCmd(cmd))
}

func TestShellView_SectionClass(t *testing.T) {
	s, _ := newTestShell(t)
	assert.Equal(t, "section", s.SectionClass())

	s, _ = newTestShell(t, WithTiles(false))
	assert.Equal(t, "section section-no-tiles", s.SectionClass())
}

func TestShellView_ViewShowsHelpAndToggle(t *testing.T) {
	s, _ := newTestShell(t, WithToggleButton(true))

	out := s.View()
	assert.Contains(t, out, "toggle sidebar")
	assert.Contains(t, out, "quit")
	assert.Contains(t, out, "Welcome page")
	assert.NotContains(t, out, "«", "no rail toggle when the toggle button is used")
}

func TestShellView_IndependentShells(t *testing.T) {
	a, _ := newTestShell(t)
	b, _ := newTestShell(t)

	a.ToggleSidebar()
	assert.True(t, a.Provider.Toggled())
	assert.False(t, b.Provider.Toggled())
	assert.NotSame(t, a.zones, b.zones)
}

func TestShellView_AsTeaModel(t *testing.T) {
	s, _ := newTestShell(t)
	m := s.AsTeaModel()

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	assert.Same(t, m, next)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Home")
}
