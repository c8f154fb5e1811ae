package ui

import (
	"strconv"

	"patternui/internal/panel"
)

// EventKind identifies a provider state change.
type EventKind int

const (
	EventSelect EventKind = iota
	EventToggleBranch
	EventSelectTile
	EventToggleSidebar
)

func (k EventKind) String() string {
	switch k {
	case EventSelect:
		return "select"
	case EventToggleBranch:
		return "toggle_branch"
	case EventSelectTile:
		return "select_tile"
	case EventToggleSidebar:
		return "toggle_sidebar"
	default:
		return "unknown"
	}
}

// Event is published by a Provider after every state change.
type Event struct {
	Kind    EventKind
	Path    panel.Path
	ID      string
	IDPath  string
	Open    bool // EventToggleBranch: state after the toggle
	Toggled bool // EventToggleSidebar: state after the toggle
}

// SpanName is the telemetry span name for the event.
func (e Event) SpanName() string {
	if e.Kind == EventToggleSidebar {
		return "sidebar." + e.Kind.String()
	}
	return "panel." + e.Kind.String()
}

// Attributes flattens the event for telemetry.
func (e Event) Attributes() map[string]string {
	switch e.Kind {
	case EventToggleSidebar:
		return map[string]string{"toggled": strconv.FormatBool(e.Toggled)}
	case EventToggleBranch:
		return map[string]string{"id": e.ID, "id_path": e.IDPath, "open": strconv.FormatBool(e.Open)}
	default:
		return map[string]string{"id": e.ID, "id_path": e.IDPath}
	}
}
