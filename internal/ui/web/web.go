// Package web renders a sidebar provider as HTML with gomponents.
//
// The markup carries the class names host stylesheets target: side-nav,
// side-nav__tiles, side-nav__items, toggled, active, disabled, dropdown,
// dropdown-toggle, section-no-tiles. Every clickable entry has a data-path
// attribute that ParsePath turns back into a panel.Path, so a host can route
// clicks to Provider.Select, ToggleBranchAt or SelectTile.
package web

import (
	"fmt"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"patternui/internal/panel"
	"patternui/internal/ui"
)

// LinkRenderer draws the inside of one entry.
type LinkRenderer[ID ~string, E any] func(ui.LinkProps[ID, E]) g.Node

// DefaultLink renders the title in a div whose id is the item id, or the id
// itself when the title is missing.
func DefaultLink[ID ~string, E any](p ui.LinkProps[ID, E]) g.Node {
	title := p.Item.Title
	if title == "" {
		title = string(p.Item.ID)
	}
	return html.Div(html.ID(string(p.Item.ID)), g.Text(title))
}

// Layout renders the whole shell: optional toggle button, navigation and the
// main section wrapping content.
func Layout[ID ~string, E any](p *ui.Provider[ID, E], link LinkRenderer[ID, E], content g.Node) g.Node {
	if link == nil {
		link = DefaultLink[ID, E]
	}
	section := "section"
	if !p.Tiles() {
		section = "section section-no-tiles"
	}
	return html.Div(
		html.ID("panel-layout"),
		html.Class(classes("panel-layout", when(p.Toggled(), "toggled"))),
		g.If(p.ToggleButton(),
			html.Button(
				html.ID("sidebar-toggle"),
				html.Type("button"),
				g.Attr("title", "Toggle sidebar"),
				g.Attr("aria-expanded", strconv.FormatBool(!p.Toggled())),
				icon("bars"),
			),
		),
		Sidebar(p, link),
		html.Main(
			html.ID("main-section"),
			html.Class(section),
			content,
		),
	)
}

// Sidebar renders the navigation element alone.
func Sidebar[ID ~string, E any](p *ui.Provider[ID, E], link LinkRenderer[ID, E]) g.Node {
	if link == nil {
		link = DefaultLink[ID, E]
	}
	items := p.Items()

	var body []g.Node
	body = append(body,
		html.ID("side-nav"),
		html.Class(classes("side-nav", when(p.Toggled(), "toggled"))),
	)
	if p.Hidden() {
		body = append(body, g.Attr("style", "width: 0px"), g.Attr("aria-hidden", "true"))
	}

	if p.Tiles() {
		body = append(body, tiles(p))
		sel := p.SelectedTile()
		var level []panel.Item[ID, E]
		if sel >= 0 && sel < len(items) {
			level = items[sel].Children
		}
		lineage := panel.Lineage[ID, E]{}.Enter(items)
		if lineage.Contains(level) {
			level = nil
		}
		w := &walker[ID, E]{p: p, link: link}
		body = append(body, w.itemList(level, panel.Path{sel}, sel >= 0 && p.IsDisabled(panel.Path{sel}), lineage.Enter(level)))
	} else {
		w := &walker[ID, E]{p: p, link: link}
		body = append(body, w.itemList(items, nil, false, panel.Lineage[ID, E]{}.Enter(items)))
	}

	if !p.ToggleButton() {
		arrow := "angle-left"
		if p.Toggled() {
			arrow = "angle-right"
		}
		body = append(body, html.Button(
			html.ID("side-nav-toggle"),
			html.Type("button"),
			g.Attr("title", "Toggle navigation"),
			icon(arrow),
		))
	}
	return html.Nav(body...)
}

func tiles[ID ~string, E any](p *ui.Provider[ID, E]) g.Node {
	items := p.Items()
	lis := make([]g.Node, 0, len(items)+1)
	lis = append(lis, html.Class("side-nav__tiles"))
	for i := range items {
		it := &items[i]
		path := panel.Path{i}
		lis = append(lis, html.Li(
			html.Class(classes("side-nav__tile", when(p.IsActive(path), "active"), when(i == p.SelectedTile(), "selected"))),
			html.Button(
				html.Type("button"),
				g.Attr("title", it.Title),
				g.Attr("data-path", path.String()),
				g.If(it.Disabled, html.Disabled()),
				g.If(it.Icon != "", icon(it.Icon)),
				g.If(it.Icon == "", html.Span(g.Text(it.Title))),
			),
		))
	}
	return html.Ul(lis...)
}

// walker carries the state of one rendering pass over the tree.
type walker[ID ~string, E any] struct {
	p     *ui.Provider[ID, E]
	link  LinkRenderer[ID, E]
	nodes int
}

// itemList renders one level of entries. Closed branches keep their children
// in the document with the hidden attribute. A branch whose children alias a
// level above it renders empty, and rendering stops after panel.MaxNodes
// entries.
func (w *walker[ID, E]) itemList(level []panel.Item[ID, E], parent panel.Path, disabled bool, lineage panel.Lineage[ID, E]) g.Node {
	p := w.p
	class := "dropdown-menu"
	if len(parent) == 0 || (p.Tiles() && len(parent) == 1) {
		class = "side-nav__items"
	}
	lis := []g.Node{html.Class(class)}
	if class == "side-nav__items" && p.Toggled() {
		lis = append(lis, g.Attr("hidden"))
	}
	if len(parent) >= panel.MaxDepth {
		return html.Ul(lis...)
	}
	for i := range level {
		if w.nodes >= panel.MaxNodes {
			break
		}
		w.nodes++
		it := &level[i]
		path := parent.Child(i)
		dis := disabled || it.Disabled
		props := ui.LinkProps[ID, E]{
			Item:     it,
			Path:     path,
			Depth:    path.Depth(),
			Active:   p.IsActive(path),
			Disabled: dis,
			Branch:   it.IsBranch(),
			Open:     it.IsBranch() && p.IsOpen(path),
		}
		lis = append(lis, w.entry(props, lineage))
	}
	return html.Ul(lis...)
}

func (w *walker[ID, E]) entry(props ui.LinkProps[ID, E], lineage panel.Lineage[ID, E]) g.Node {
	link := w.link
	if !props.Branch {
		return html.Li(
			html.Class(classes("side-nav__item", when(props.Active, "active"), when(props.Disabled, "disabled"))),
			g.If(props.Disabled, g.Attr("aria-disabled", "true")),
			html.Div(
				html.Class("side-nav__link"),
				g.Attr("data-path", props.Path.String()),
				link(props),
			),
		)
	}
	open := props.Open && !props.Disabled
	level := props.Item.Children
	if lineage.Contains(level) {
		level = nil
	}
	children := w.itemList(level, props.Path, props.Disabled, lineage.Enter(level))
	return html.Li(
		html.Class(classes("dropdown", when(props.Active, "active"), when(open, "open"), when(props.Disabled, "disabled"))),
		html.Button(
			html.Class("dropdown-toggle"),
			html.Type("button"),
			g.Attr("title", props.Item.Title),
			g.Attr("data-path", props.Path.String()),
			g.Attr("aria-expanded", strconv.FormatBool(open)),
			g.If(props.Disabled, html.Disabled()),
			link(props),
		),
		html.Div(
			g.If(!open, g.Attr("hidden")),
			children,
		),
	)
}

func icon(name string) g.Node {
	return html.Span(
		html.Class("icon"),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
		g.Text(ui.Glyph(name)),
	)
}

// ParsePath decodes a data-path attribute ("1.1.0").
func ParsePath(s string) (panel.Path, error) {
	if s == "" {
		return nil, fmt.Errorf("parse path: empty")
	}
	parts := strings.Split(s, ".")
	out := make(panel.Path, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("parse path %q: bad index %q", s, part)
		}
		out[i] = n
	}
	return out, nil
}

func when(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

func classes(names ...string) string {
	out := names[:0:0]
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}
