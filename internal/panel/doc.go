// Package panel models the sidebar menu tree and resolves which entry is active.
//
// A tree is a forest of Item values supplied by the caller. Items are never
// mutated here; view state (open branches, the current selection) lives in the
// ui.Provider that owns one mounted sidebar.
package panel
