package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, active entries
	ColorHighlight = "205" // Magenta - cursor, focused borders
	ColorMuted     = "241" // Gray - hints, disabled entries
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "238" // Dark gray - unfocused borders
	ColorTileBg    = "236" // Tile background
)

// Styles contains the shared style definitions of the sidebar shell.
var Styles = struct {
	Link     lipgloss.Style // Normal entry
	Active   lipgloss.Style // Active entry and its ancestors
	Disabled lipgloss.Style // Disabled entry
	Cursor   lipgloss.Style // Entry under the cursor while focused
	Branch   lipgloss.Style // Expand/collapse marker

	Tile         lipgloss.Style // First-level tile
	TileActive   lipgloss.Style // Tile of the active panel
	TileDisabled lipgloss.Style

	Nav        lipgloss.Style // Sidebar box
	NavFocused lipgloss.Style
	Toggle     lipgloss.Style // Toggle affordances

	Section        lipgloss.Style // Main section box
	SectionNoTiles lipgloss.Style // Main section when the first level is a list
	SectionFocused lipgloss.Style

	Hint lipgloss.Style
}{
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Active: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Faint(true),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Branch: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Tile: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorTileBg)).
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	TileActive: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorAccent)).
		Foreground(lipgloss.Color(ColorTileBg)).
		Bold(true).
		Padding(0, 1),
	TileDisabled: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorTileBg)).
		Foreground(lipgloss.Color(ColorMuted)).
		Faint(true).
		Strikethrough(true).
		Padding(0, 1),
	Nav: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(ColorDim)),
	NavFocused: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	Toggle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Section: lipgloss.NewStyle().
		Padding(0, 1),
	SectionNoTiles: lipgloss.NewStyle().
		Padding(0, 2),
	SectionFocused: lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
