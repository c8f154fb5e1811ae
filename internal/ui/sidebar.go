package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"patternui/internal/panel"
	"patternui/internal/ui/textutil"
)

const (
	// DefaultSidebarWidth is the expanded sidebar width in columns.
	DefaultSidebarWidth = 32
	// TileColumnWidth is the width of the tile column and of the icon rail.
	TileColumnWidth = 5
)

// LinkProps is everything a LinkRenderer gets to draw one entry.
type LinkProps[ID ~string, E any] struct {
	Item     *panel.Item[ID, E]
	Path     panel.Path
	Depth    int
	Active   bool // the active item or one of its ancestors
	Disabled bool // disabled itself or below a disabled branch
	Branch   bool
	Open     bool
	Tile     bool
}

// LinkRenderer draws a single entry. The returned text is placed on one row;
// the sidebar adds indentation, markers and styling around it.
type LinkRenderer[ID ~string, E any] func(LinkProps[ID, E]) string

// DefaultLinkRenderer draws the icon glyph followed by the title, or the id
// when the title is missing.
func DefaultLinkRenderer[ID ~string, E any](p LinkProps[ID, E]) string {
	title := p.Item.Title
	if title == "" {
		title = string(p.Item.ID)
	}
	if g := Glyph(p.Item.Icon); g != "" {
		return g + " " + title
	}
	return title
}

// SelectedMsg is sent after a leaf has been selected.
type SelectedMsg struct {
	ID     string
	IDPath string
	Title  string
	Path   panel.Path
}

type rowKind int

const (
	rowTile rowKind = iota
	rowBranch
	rowLeaf
)

// row is one visible, clickable line of the sidebar.
type row[ID ~string, E any] struct {
	kind     rowKind
	path     panel.Path
	item     *panel.Item[ID, E]
	disabled bool
}

// SidebarView renders the provider's tree recursively through a LinkRenderer
// and turns keys and mouse clicks into provider operations.
//
// Collapsed branches emit no rows. Their open state stays in the provider, so
// nested branches reappear as they were when the parent is opened again.
type SidebarView[ID ~string, E any] struct {
	Provider *Provider[ID, E]
	Render   LinkRenderer[ID, E]
	Keys     KeyMap

	cursor  int
	width   int
	height  int
	focused bool

	zones    *zone.Manager
	prefix   string
	embedded bool // the enclosing shell scans zones
}

// Ensure SidebarView implements View.
var _ View = (*SidebarView[string, struct{}])(nil)

// NewSidebarView creates a sidebar over p. A nil render uses DefaultLinkRenderer.
func NewSidebarView[ID ~string, E any](p *Provider[ID, E], render LinkRenderer[ID, E]) *SidebarView[ID, E] {
	if render == nil {
		render = DefaultLinkRenderer[ID, E]
	}
	zm := zone.New()
	return &SidebarView[ID, E]{
		Provider: p,
		Render:   render,
		Keys:     DefaultKeyMap(),
		width:    DefaultSidebarWidth,
		focused:  true,
		zones:    zm,
		prefix:   zm.NewPrefix(),
	}
}

// Init implements View.
func (s *SidebarView[ID, E]) Init() tea.Cmd {
	return nil
}

// SetFocused implements Focusable.
func (s *SidebarView[ID, E]) SetFocused(f bool) { s.focused = f }

// SetSize sets the expanded width and the height available for rows.
func (s *SidebarView[ID, E]) SetSize(width, height int) {
	if width > TileColumnWidth {
		s.width = width
	}
	s.height = height
}

// Width is the number of columns the sidebar currently occupies: the expanded
// width, the rail width when collapsed to icons, or zero when hidden.
func (s *SidebarView[ID, E]) Width() int {
	switch {
	case s.Provider.Hidden():
		return 0
	case s.Provider.Rail():
		return TileColumnWidth
	default:
		return s.width
	}
}

// Cursor returns the index of the highlighted row.
func (s *SidebarView[ID, E]) Cursor() int { return s.cursor }

// Update implements View.
func (s *SidebarView[ID, E]) Update(msg tea.Msg) (View, tea.Cmd) {
	rows := s.rows()
	s.clampCursor(len(rows))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !s.focused {
			return s, nil
		}
		switch {
		case key.Matches(msg, s.Keys.Up):
			if s.cursor > 0 {
				s.cursor--
			}
		case key.Matches(msg, s.Keys.Down):
			if s.cursor < len(rows)-1 {
				s.cursor++
			}
		case key.Matches(msg, s.Keys.Top):
			s.cursor = 0
		case key.Matches(msg, s.Keys.Bottom):
			s.cursor = max(len(rows)-1, 0)
		case key.Matches(msg, s.Keys.Click):
			if s.cursor < len(rows) {
				return s, s.Click(rows[s.cursor].path)
			}
		}
		return s, nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return s, nil
		}
		if !s.Provider.ToggleButton() && s.inZone("side-nav-toggle", msg) {
			s.Provider.ToggleSidebar()
			return s, nil
		}
		for i, r := range rows {
			if s.inZone(r.path.String(), msg) {
				s.cursor = i
				return s, s.Click(r.path)
			}
		}
	}
	return s, nil
}

// Click performs the click action of the entry at path: tiles switch the
// shown panel, branches expand or collapse, leaves become active. Disabled
// entries ignore clicks entirely, including forced ones.
func (s *SidebarView[ID, E]) Click(path panel.Path) tea.Cmd {
	p := s.Provider
	it := panel.At(p.Items(), path)
	if it == nil || p.IsDisabled(path) {
		return nil
	}
	if !it.IsBranch() {
		if !p.Select(path) {
			return nil
		}
		sel := SelectedMsg{
			ID:     string(it.ID),
			IDPath: panel.IDPath(p.Items(), path),
			Title:  it.Title,
			Path:   p.ActivePath(),
		}
		return func() tea.Msg { return sel }
	}
	if p.Tiles() && len(path) == 1 {
		p.SelectTile(path[0])
		return nil
	}
	p.ToggleBranchAt(path)
	return nil
}

// rows flattens the visible entries in display order.
func (s *SidebarView[ID, E]) rows() []row[ID, E] {
	p := s.Provider
	items := p.Items()
	if p.Hidden() {
		return nil
	}

	var out []row[ID, E]
	if p.Tiles() || p.Rail() {
		for i := range items {
			kind := rowTile
			if !p.Tiles() {
				kind = rowLeaf
				if items[i].IsBranch() {
					kind = rowBranch
				}
			}
			out = append(out, row[ID, E]{kind: kind, path: panel.Path{i}, item: &items[i], disabled: items[i].Disabled})
		}
		if p.Rail() {
			return out
		}
		sel := p.SelectedTile()
		if sel >= 0 && sel < len(items) {
			lineage := panel.Lineage[ID, E]{}.Enter(items)
			if !lineage.Contains(items[sel].Children) {
				out = s.appendLevel(out, items[sel].Children, panel.Path{sel}, items[sel].Disabled, lineage.Enter(items[sel].Children))
			}
		}
		return out
	}
	return s.appendLevel(out, items, nil, false, panel.Lineage[ID, E]{}.Enter(items))
}

// appendLevel adds the rows of one tree level and, recursively, of its open
// branches. Recursion stops at panel.MaxDepth, at a branch whose children
// alias a level above it, and after panel.MaxNodes rows.
func (s *SidebarView[ID, E]) appendLevel(out []row[ID, E], level []panel.Item[ID, E], parent panel.Path, disabled bool, lineage panel.Lineage[ID, E]) []row[ID, E] {
	if len(parent) >= panel.MaxDepth {
		return out
	}
	for i := range level {
		if len(out) >= panel.MaxNodes {
			return out
		}
		it := &level[i]
		path := parent.Child(i)
		dis := disabled || it.Disabled
		if !it.IsBranch() {
			out = append(out, row[ID, E]{kind: rowLeaf, path: path, item: it, disabled: dis})
			continue
		}
		out = append(out, row[ID, E]{kind: rowBranch, path: path, item: it, disabled: dis})
		if !dis && s.Provider.IsOpen(path) && !lineage.Contains(it.Children) {
			out = s.appendLevel(out, it.Children, path, dis, lineage.Enter(it.Children))
		}
	}
	return out
}

func (s *SidebarView[ID, E]) clampCursor(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *SidebarView[ID, E]) zoneID(name string) string {
	return s.prefix + name
}

func (s *SidebarView[ID, E]) inZone(name string, msg tea.MouseMsg) bool {
	z := s.zones.Get(s.zoneID(name))
	return z != nil && z.InBounds(msg)
}

func (s *SidebarView[ID, E]) props(r row[ID, E]) LinkProps[ID, E] {
	p := s.Provider
	return LinkProps[ID, E]{
		Item:     r.item,
		Path:     r.path,
		Depth:    r.path.Depth(),
		Active:   p.IsActive(r.path),
		Disabled: r.disabled,
		Branch:   r.item.IsBranch(),
		Open:     r.item.IsBranch() && p.IsOpen(r.path),
		Tile:     r.kind == rowTile,
	}
}

// View implements View.
func (s *SidebarView[ID, E]) View() string {
	if s.Provider.Hidden() {
		return ""
	}
	rows := s.rows()
	s.clampCursor(len(rows))

	var tiles, entries []string
	for i, r := range rows {
		line := s.renderRow(r, i == s.cursor && s.focused)
		if r.kind == rowTile || s.Provider.Rail() {
			tiles = append(tiles, line)
		} else {
			entries = append(entries, line)
		}
	}

	toggle := ""
	if !s.Provider.ToggleButton() {
		arrow := Glyph("angle-left")
		if s.Provider.Toggled() {
			arrow = Glyph("angle-right")
		}
		toggle = s.zones.Mark(s.zoneID("side-nav-toggle"), Styles.Toggle.Render(textutil.Fit(" "+arrow, TileColumnWidth)))
	}

	var out string
	switch {
	case s.Provider.Rail():
		out = lipgloss.JoinVertical(lipgloss.Left, append(tiles, toggle)...)
	case s.Provider.Tiles():
		tileCol := lipgloss.NewStyle().Width(TileColumnWidth).Render(strings.Join(tiles, "\n"))
		itemCol := lipgloss.NewStyle().Width(s.width - TileColumnWidth).Render(strings.Join(entries, "\n"))
		out = lipgloss.JoinHorizontal(lipgloss.Top, tileCol, itemCol)
		if toggle != "" {
			out = lipgloss.JoinVertical(lipgloss.Left, out, toggle)
		}
	default:
		out = strings.Join(entries, "\n")
		if toggle != "" {
			out = lipgloss.JoinVertical(lipgloss.Left, out, toggle)
		}
	}
	if !s.embedded {
		out = s.zones.Scan(out)
	}
	return out
}

func (s *SidebarView[ID, E]) renderRow(r row[ID, E], atCursor bool) string {
	props := s.props(r)
	rail := s.Provider.Rail()

	var text string
	width := s.width - TileColumnWidth
	switch {
	case r.kind == rowTile || rail:
		text = Glyph(r.item.Icon)
		if text == "" {
			text = textutil.Truncate(string(r.item.ID), 1)
		}
		width = TileColumnWidth
	default:
		marker := "  "
		if props.Branch {
			marker = "▸ "
			if props.Open {
				marker = "▾ "
			}
		}
		depth := props.Depth
		if s.Provider.Tiles() {
			depth--
		} else {
			width = s.width
		}
		text = textutil.Indent(Styles.Branch.Render(marker), depth) + s.Render(props)
	}

	style := rowStyle(r.kind, props, atCursor)
	if r.kind == rowTile || rail {
		text = textutil.Fit(text, max(width-style.GetHorizontalPadding(), 1))
	} else {
		text = truncateStyled(text, width)
	}
	return s.zones.Mark(s.zoneID(r.path.String()), style.Render(text))
}

func rowStyle[ID ~string, E any](kind rowKind, props LinkProps[ID, E], atCursor bool) lipgloss.Style {
	var style lipgloss.Style
	switch {
	case kind == rowTile && props.Disabled:
		style = Styles.TileDisabled
	case kind == rowTile && props.Active:
		style = Styles.TileActive
	case kind == rowTile:
		style = Styles.Tile
	case props.Disabled:
		style = Styles.Disabled
	case props.Active:
		style = Styles.Active
	default:
		style = Styles.Link
	}
	if atCursor {
		style = style.Inherit(Styles.Cursor).Foreground(Styles.Cursor.GetForeground())
	}
	return style
}

// truncateStyled cuts a line that may already carry ANSI styling.
func truncateStyled(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
