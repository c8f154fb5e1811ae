package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Region IDs of the shell layout.
const (
	RegionSidebar = "side-nav"
	RegionContent = "main-section"
)

// ShellView is the sidebar layout: the navigation on the left, the host's
// content on the right, an optional toggle button and a help bar.
//
// With the toggle button the sidebar collapses to zero width; without it the
// sidebar's own toggle collapses it to an icon rail. Either way only the
// provider's toggled flag changes.
type ShellView[ID ~string, E any] struct {
	Provider *Provider[ID, E]
	Sidebar  *SidebarView[ID, E]
	Content  View
	Focus    *FocusManager
	Keys     KeyMap

	help   help.Model
	zones  *zone.Manager
	width  int
	height int
}

// Ensure ShellView implements View and Layout.
var (
	_ View   = (*ShellView[string, struct{}])(nil)
	_ Layout = (*ShellView[string, struct{}])(nil)
)

// NewShellView composes a sidebar over p with content. Each shell owns its
// own zone manager, so several shells never share click state.
func NewShellView[ID ~string, E any](p *Provider[ID, E], render LinkRenderer[ID, E], content View) *ShellView[ID, E] {
	if content == nil {
		content = NewContentView("")
	}
	sb := NewSidebarView(p, render)
	sb.embedded = true
	s := &ShellView[ID, E]{
		Provider: p,
		Sidebar:  sb,
		Content:  content,
		Keys:     DefaultKeyMap(),
		help:     newHelp(),
		zones:    sb.zones,
	}
	s.Focus = &FocusManager{OnChange: func(_, to string) { s.applyFocus(to) }}
	s.Focus.SetOrder(s.FocusOrder())
	s.applyFocus(s.Focus.Current)
	return s
}

// Regions implements Layout.
func (s *ShellView[ID, E]) Regions() []Region {
	top := s.headerHeight()
	return []Region{
		{
			ID:   RegionSidebar,
			View: s.Sidebar,
			Bounds: func(width, height int) (x, y, w, h int) {
				return 0, top, s.Sidebar.Width(), max(height-top-1, 0)
			},
		},
		{
			ID:   RegionContent,
			View: s.Content,
			Bounds: func(width, height int) (x, y, w, h int) {
				sw := s.Sidebar.Width()
				return sw, top, max(width-sw, 0), max(height-top-1, 0)
			},
		},
	}
}

// FocusOrder implements Layout. A hidden sidebar cannot take focus.
func (s *ShellView[ID, E]) FocusOrder() []string {
	if s.Provider.Hidden() {
		return []string{RegionContent}
	}
	return []string{RegionSidebar, RegionContent}
}

// SectionClass is the semantic marker of the main section.
func (s *ShellView[ID, E]) SectionClass() string {
	if s.Provider.Tiles() {
		return "section"
	}
	return "section section-no-tiles"
}

// Init implements View.
func (s *ShellView[ID, E]) Init() tea.Cmd {
	return tea.Batch(s.Sidebar.Init(), s.Content.Init())
}

// Update implements View.
func (s *ShellView[ID, E]) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.resize()
		return s, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.Keys.Quit):
			return s, tea.Quit
		case key.Matches(msg, s.Keys.ToggleSidebar):
			s.ToggleSidebar()
			return s, nil
		case key.Matches(msg, s.Keys.NextFocus):
			s.Focus.Next()
			return s, nil
		case key.Matches(msg, s.Keys.PrevFocus):
			s.Focus.Prev()
			return s, nil
		}
		return s, s.updateFocused(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft && s.Provider.ToggleButton() {
			if z := s.zones.Get(s.Sidebar.zoneID("sidebar-toggle")); z != nil && z.InBounds(msg) {
				s.ToggleSidebar()
				return s, nil
			}
		}
		wasToggled := s.Provider.Toggled()
		_, cmd := s.Sidebar.Update(msg)
		if s.Provider.Toggled() != wasToggled {
			s.afterToggle()
		}
		var ccmd tea.Cmd
		s.Content, ccmd = s.Content.Update(msg)
		return s, tea.Batch(cmd, ccmd)
	case SelectedMsg:
		var cmd tea.Cmd
		s.Content, cmd = s.Content.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.Content, cmd = s.Content.Update(msg)
	return s, cmd
}

// ToggleSidebar flips the sidebar and moves focus off a hidden sidebar.
func (s *ShellView[ID, E]) ToggleSidebar() {
	s.Provider.ToggleSidebar()
	s.afterToggle()
}

func (s *ShellView[ID, E]) afterToggle() {
	s.Focus.SetOrder(s.FocusOrder())
	s.applyFocus(s.Focus.Current)
	s.resize()
}

func (s *ShellView[ID, E]) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.Focus.Current {
	case RegionSidebar:
		_, cmd = s.Sidebar.Update(msg)
	case RegionContent:
		s.Content, cmd = s.Content.Update(msg)
	}
	return cmd
}

func (s *ShellView[ID, E]) applyFocus(current string) {
	s.Sidebar.SetFocused(current == RegionSidebar)
	if f, ok := s.Content.(Focusable); ok {
		f.SetFocused(current == RegionContent)
	}
}

type sizer interface {
	SetSize(width, height int)
}

func (s *ShellView[ID, E]) resize() {
	if s.width == 0 || s.height == 0 {
		return
	}
	for _, r := range s.Regions() {
		_, _, w, h := r.Bounds(s.width, s.height)
		if r.ID == RegionSidebar {
			// The sidebar keeps its expanded width while collapsed.
			s.Sidebar.SetSize(min(DefaultSidebarWidth, s.width/2), h)
			continue
		}
		if sz, ok := r.View.(sizer); ok {
			sz.SetSize(max(w-2, 0), h)
		}
	}
}

func (s *ShellView[ID, E]) headerHeight() int {
	if s.Provider.ToggleButton() {
		return 1
	}
	return 0
}

// View implements View.
func (s *ShellView[ID, E]) View() string {
	var parts []string
	if s.Provider.ToggleButton() {
		button := s.zones.Mark(s.Sidebar.zoneID("sidebar-toggle"), Styles.Toggle.Render(Glyph("bars")))
		parts = append(parts, button)
	}

	section := Styles.Section
	if !s.Provider.Tiles() {
		section = Styles.SectionNoTiles
	}
	if s.Focus.Current == RegionContent {
		section = section.Inherit(Styles.SectionFocused)
	}
	main := section.Render(s.Content.View())

	if nav := s.Sidebar.View(); s.Sidebar.Width() > 0 {
		navStyle := Styles.Nav
		if s.Focus.Current == RegionSidebar {
			navStyle = Styles.NavFocused
		}
		nav = navStyle.Width(s.Sidebar.Width()).Render(nav)
		main = lipgloss.JoinHorizontal(lipgloss.Top, nav, main)
	}
	parts = append(parts, main)

	hint := s.help.ShortHelpView(s.Keys.ShortHelp())
	if s.width > 0 {
		hint = truncateStyled(hint, s.width)
	}
	parts = append(parts, hint)

	return s.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (s *ShellView[ID, E]) AsTeaModel() tea.Model {
	return &shellModel[ID, E]{ShellView: s}
}

// shellModel wraps ShellView to implement tea.Model.
type shellModel[ID ~string, E any] struct {
	*ShellView[ID, E]
}

// Init implements tea.Model.
func (m *shellModel[ID, E]) Init() tea.Cmd {
	return m.ShellView.Init()
}

// Update implements tea.Model.
func (m *shellModel[ID, E]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.ShellView.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *shellModel[ID, E]) View() string {
	return m.ShellView.View()
}
