package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"patternui/internal/panel"
)

type route string

type testItem = panel.Item[route, struct{}]

// referenceTree is the two-tile menu used across the sidebar tests.
func referenceTree(active, disabled bool) []testItem {
	return []testItem{
		{
			ID: "home", Title: "Home", Icon: "bars", Disabled: disabled,
			Children: []testItem{
				{ID: "home", Title: "Home", Active: active},
			},
		},
		{
			ID: "settings", Title: "Settings", Icon: "gears", Disabled: disabled,
			Children: []testItem{
				{ID: "settings", Title: "Settings"},
				{
					ID: "dropdownTest", Title: "Dropdown",
					Children: []testItem{
						{ID: "dropdown-test1", Title: "Dropdown test 1"},
						{ID: "dropdown-test2", Title: "Dropdown test 2", Active: active},
					},
				},
			},
		},
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+b":
		return tea.KeyMsg{Type: tea.KeyCtrlB}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// runCmd executes cmd and returns its message, nil for a nil cmd.
func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
