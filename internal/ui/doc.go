// Package ui renders a nested, collapsible navigation sidebar with Bubble Tea.
//
// Core abstractions:
//   - Provider: owns one sidebar's tree, active item, open branches and toggled state
//   - SidebarView: renders the tree recursively through a LinkRenderer
//   - ShellView: lays out sidebar, content and help bar; implements Layout
//   - View / Region / Layout: Elm-style composition units and their placement
//   - FocusManager: tracks and rotates focus across regions
//
// Each ShellView owns its Provider and its bubblezone manager; nothing is
// shared between mounted sidebars.
package ui
