package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// ContentView is a scrollable page area. By default it shows the id of the
// last selected entry, which is what the demo binary uses as its page.
type ContentView struct {
	vp      viewport.Model
	text    string
	focused bool

	// Page returns the page body for a selection. Nil shows msg.ID.
	Page func(SelectedMsg) string
}

// Ensure ContentView implements View.
var _ View = (*ContentView)(nil)

// NewContentView creates a content view showing placeholder until something
// is selected.
func NewContentView(placeholder string) *ContentView {
	vp := viewport.New(0, 0)
	vp.SetContent(placeholder)
	return &ContentView{vp: vp, text: placeholder}
}

// Text returns the current page body.
func (c *ContentView) Text() string { return c.text }

// SetText replaces the page body.
func (c *ContentView) SetText(s string) {
	c.text = s
	c.vp.SetContent(s)
	c.vp.GotoTop()
}

// SetFocused implements Focusable.
func (c *ContentView) SetFocused(f bool) { c.focused = f }

// SetSize resizes the viewport.
func (c *ContentView) SetSize(width, height int) {
	c.vp.Width = width
	c.vp.Height = height
}

// Init implements View.
func (c *ContentView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (c *ContentView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case SelectedMsg:
		if c.Page != nil {
			c.SetText(c.Page(msg))
		} else {
			c.SetText(msg.ID)
		}
		return c, nil
	case tea.KeyMsg:
		if !c.focused {
			return c, nil
		}
	}
	var cmd tea.Cmd
	c.vp, cmd = c.vp.Update(msg)
	return c, cmd
}

// View implements View.
func (c *ContentView) View() string {
	if c.vp.Width == 0 || c.vp.Height == 0 {
		return c.text
	}
	return c.vp.View()
}
