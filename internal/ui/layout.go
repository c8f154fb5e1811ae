package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; it follows Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Focusable is implemented by views that draw a cursor only while focused.
type Focusable interface {
	SetFocused(bool)
}

// BoundsFunc returns a region's position and size for the given terminal size.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Region hosts a View inside a layout.
type Region struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// Layout arranges regions and defines focus order.
type Layout interface {
	Regions() []Region
	FocusOrder() []string
}
