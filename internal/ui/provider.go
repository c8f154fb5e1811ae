package ui

import (
	"log/slog"
	"slices"

	"patternui/internal/panel"
)

// Option configures a Provider at mount time.
type Option func(*settings)

type settings struct {
	tiles           bool
	toggleButton    bool
	defaultActive   string
	expandAncestors bool
	toggled         bool
	logger          *slog.Logger
}

func defaultSettings() settings {
	return settings{
		tiles:           true,
		expandAncestors: true,
		logger:          slog.New(slog.DiscardHandler),
	}
}

// WithTiles renders the first level as tiles (default) or as a plain list.
func WithTiles(on bool) Option {
	return func(s *settings) { s.tiles = on }
}

// WithToggleButton makes the sidebar toggle collapse the navigation to zero
// width. Without it the sidebar collapses to an icon rail.
func WithToggleButton(on bool) Option {
	return func(s *settings) { s.toggleButton = on }
}

// WithDefaultActive names the top-level item selected when no leaf is flagged
// active.
func WithDefaultActive(id string) Option {
	return func(s *settings) { s.defaultActive = id }
}

// WithExpandActiveAncestors controls whether the branches leading to the
// active item are opened when it is resolved or selected. Default true.
func WithExpandActiveAncestors(on bool) Option {
	return func(s *settings) { s.expandAncestors = on }
}

// WithToggled mounts the sidebar already collapsed.
func WithToggled(on bool) Option {
	return func(s *settings) { s.toggled = on }
}

// WithLogger sets the logger for no-op interactions and tree warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// Provider owns the state of one mounted sidebar: the current tree, the
// active selection, the open branches and whether the sidebar is toggled.
//
// Selection, selected tile and branch state are remembered by id so they
// survive the caller passing a fresh tree on every render. A Provider is not
// safe for concurrent use; all calls are expected from the Bubble Tea update
// loop.
type Provider[ID ~string, E any] struct {
	settings
	items     []panel.Item[ID, E]
	active    panel.Path
	activeIDs []ID
	tile      int
	tileID    ID
	tileSet   bool
	mounted   bool
	open      map[string]bool
	onSelect  func(*panel.Item[ID, E])
	subs      []subscriber
	nextSub   int
}

type subscriber struct {
	id int
	fn func(Event)
}

// NewProvider mounts a provider over items and resolves the initial active item.
func NewProvider[ID ~string, E any](items []panel.Item[ID, E], opts ...Option) *Provider[ID, E] {
	p := &Provider[ID, E]{
		settings: defaultSettings(),
		tile:     -1,
		open:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(&p.settings)
	}
	p.SetItems(items)
	return p
}

// SetItems replaces the tree reference. Leaves flagged active take over the
// selection; otherwise the current selection is kept, looked up by its ids,
// while it still names a leaf, and the default resolution applies last.
// Ancestors are expanded only when the active item changes, so branches the
// user closed stay closed across render passes.
func (p *Provider[ID, E]) SetItems(items []panel.Item[ID, E]) {
	p.items = items
	if panel.Truncated(items) {
		p.logger.Warn("panel tree is cyclic or too large, unreachable items ignored",
			"max_depth", panel.MaxDepth, "max_nodes", panel.MaxNodes)
	}

	var next panel.Path
	if panel.HasActiveDescendant(items) {
		m, _ := panel.ResolveActive(items, ID(""))
		next = m.Path
	} else if path, ok := panel.Locate(items, p.activeIDs); ok && p.isLeaf(path) {
		next = path
	} else if m, ok := panel.ResolveActive(items, ID(p.defaultActive)); ok {
		next = m.Path
	}

	ids := panel.IDs(items, next)
	changed := !p.mounted || !slices.Equal(ids, p.activeIDs)
	p.mounted = true
	p.active, p.activeIDs = next, ids

	p.syncTile(changed)
	if changed && p.expandAncestors {
		p.openPath(p.active)
	}
}

// syncTile keeps the tile the user is browsing while the selection is
// unchanged and it still exists; otherwise it follows the active item.
func (p *Provider[ID, E]) syncTile(activeChanged bool) {
	if !activeChanged && p.tileSet {
		for i := range p.items {
			if p.items[i].ID == p.tileID {
				p.tile = i
				return
			}
		}
	}
	switch {
	case len(p.active) > 0:
		p.setTile(p.active[0])
	case len(p.items) > 0:
		p.setTile(0)
	default:
		p.tile, p.tileSet = -1, false
	}
}

func (p *Provider[ID, E]) setTile(index int) {
	p.tile = index
	p.tileID = p.items[index].ID
	p.tileSet = true
}

// OnSelect registers the callback invoked when a leaf is selected.
func (p *Provider[ID, E]) OnSelect(fn func(*panel.Item[ID, E])) {
	p.onSelect = fn
}

// Subscribe registers fn for every state change and returns a function that
// removes it. Subscribers run synchronously in registration order.
func (p *Provider[ID, E]) Subscribe(fn func(Event)) (unsubscribe func()) {
	id := p.nextSub
	p.nextSub++
	p.subs = append(p.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range p.subs {
			if s.id == id {
				p.subs = append(p.subs[:i:i], p.subs[i+1:]...)
				return
			}
		}
	}
}

func (p *Provider[ID, E]) publish(ev Event) {
	for _, s := range p.subs {
		s.fn(ev)
	}
}

// Items returns the current tree reference.
func (p *Provider[ID, E]) Items() []panel.Item[ID, E] { return p.items }

// Tiles reports whether the first level renders as tiles.
func (p *Provider[ID, E]) Tiles() bool { return p.tiles }

// ToggleButton reports whether toggling hides the sidebar completely.
func (p *Provider[ID, E]) ToggleButton() bool { return p.toggleButton }

// Toggled reports whether the sidebar is collapsed.
func (p *Provider[ID, E]) Toggled() bool { return p.toggled }

// Hidden reports whether the sidebar is collapsed to zero width.
func (p *Provider[ID, E]) Hidden() bool { return p.toggled && p.toggleButton }

// Rail reports whether the sidebar is collapsed to icons only.
func (p *Provider[ID, E]) Rail() bool { return p.toggled && !p.toggleButton }

// SelectedTile is the index of the top-level item whose children are shown in
// tile mode, or -1 for an empty tree.
func (p *Provider[ID, E]) SelectedTile() int { return p.tile }

// ActivePath returns the position of the active item, nil when there is none.
func (p *Provider[ID, E]) ActivePath() panel.Path { return p.active }

// Active returns the active item, nil when there is none.
func (p *Provider[ID, E]) Active() *panel.Item[ID, E] {
	return panel.At(p.items, p.active)
}

// IsActive reports whether path is the active item or one of its ancestors.
func (p *Provider[ID, E]) IsActive(path panel.Path) bool {
	return p.active.HasPrefix(path)
}

// IsOpen reports whether the branch at path is expanded.
func (p *Provider[ID, E]) IsOpen(path panel.Path) bool {
	key := panel.IDPath(p.items, path)
	return key != "" && p.open[key]
}

// IsDisabled reports whether the item at path or any ancestor is disabled.
func (p *Provider[ID, E]) IsDisabled(path panel.Path) bool {
	level := p.items
	for _, idx := range path {
		if idx < 0 || idx >= len(level) {
			return false
		}
		if level[idx].Disabled {
			return true
		}
		level = level[idx].Children
	}
	return false
}

// ToggleBranch flips the first branch with the given id in depth-first order.
// Unknown ids, leaves and disabled branches are ignored.
func (p *Provider[ID, E]) ToggleBranch(id ID) bool {
	m, ok := panel.FindBranch(p.items, id)
	if !ok {
		p.logger.Debug("toggle branch: unknown id", "id", string(id))
		return false
	}
	return p.ToggleBranchAt(m.Path)
}

// ToggleBranchAt flips the open state of the branch at path. Sibling branches
// are unaffected.
func (p *Provider[ID, E]) ToggleBranchAt(path panel.Path) bool {
	it := panel.At(p.items, path)
	if it == nil || !it.IsBranch() {
		p.logger.Debug("toggle branch: no branch at path", "path", path.String())
		return false
	}
	if p.IsDisabled(path) {
		p.logger.Debug("toggle branch: disabled", "path", path.String(), "id", string(it.ID))
		return false
	}
	key := panel.IDPath(p.items, path)
	p.open[key] = !p.open[key]
	p.publish(Event{Kind: EventToggleBranch, Path: path, ID: string(it.ID), IDPath: key, Open: p.open[key]})
	return true
}

// SelectTile shows the children of the top-level item at index in tile mode.
func (p *Provider[ID, E]) SelectTile(index int) bool {
	if index < 0 || index >= len(p.items) {
		return false
	}
	path := panel.Path{index}
	if p.IsDisabled(path) {
		p.logger.Debug("select tile: disabled", "id", string(p.items[index].ID))
		return false
	}
	p.setTile(index)
	p.publish(Event{Kind: EventSelectTile, Path: path, ID: string(p.items[index].ID), IDPath: string(p.items[index].ID)})
	return true
}

// Select makes the leaf at path the active item and notifies listeners.
// Branches and disabled leaves (or leaves below a disabled branch) are ignored.
func (p *Provider[ID, E]) Select(path panel.Path) bool {
	it := panel.At(p.items, path)
	if it == nil || it.IsBranch() {
		return false
	}
	if p.IsDisabled(path) {
		p.logger.Debug("select: disabled", "path", path.String(), "id", string(it.ID))
		return false
	}
	p.active = append(panel.Path(nil), path...)
	p.activeIDs = panel.IDs(p.items, p.active)
	p.setTile(path[0])
	if p.expandAncestors {
		p.openPath(p.active)
	}
	p.publish(Event{Kind: EventSelect, Path: p.active, ID: string(it.ID), IDPath: panel.IDPath(p.items, path)})
	if p.onSelect != nil {
		p.onSelect(it)
	}
	return true
}

// ToggleSidebar collapses or expands the whole sidebar. Tree, selection and
// branch state are left untouched.
func (p *Provider[ID, E]) ToggleSidebar() {
	p.toggled = !p.toggled
	p.publish(Event{Kind: EventToggleSidebar, Toggled: p.toggled})
}

// openPath opens every branch on path, including the item itself when it is a
// branch, so the active entry is visible.
func (p *Provider[ID, E]) openPath(path panel.Path) {
	for i := 1; i <= len(path); i++ {
		sub := path[:i]
		if it := panel.At(p.items, sub); it != nil && it.IsBranch() {
			p.open[panel.IDPath(p.items, sub)] = true
		}
	}
}

func (p *Provider[ID, E]) isLeaf(path panel.Path) bool {
	it := panel.At(p.items, path)
	return it != nil && !it.IsBranch()
}
