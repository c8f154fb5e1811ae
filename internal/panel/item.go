package panel

import (
	"strconv"
	"strings"
)

// Item is one entry of the sidebar menu tree.
//
// A non-nil Children slice marks a branch, even when it is empty. A nil
// Children slice marks a leaf, which is directly selectable. JSON keeps the
// distinction ("children": [] vs null); YAML omits an empty children list, so
// an empty branch written as YAML reads back as a leaf.
type Item[ID ~string, E any] struct {
	ID       ID            `json:"id" yaml:"id"`
	Title    string        `json:"title" yaml:"title"`
	Icon     string        `json:"icon,omitempty" yaml:"icon,omitempty"`
	Active   bool          `json:"active,omitempty" yaml:"active,omitempty"`
	Disabled bool          `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Children []Item[ID, E] `json:"children" yaml:"children,omitempty"`
	Extra    E             `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// IsBranch reports whether the item has a children field.
func (it *Item[ID, E]) IsBranch() bool {
	return it.Children != nil
}

// Path addresses an item by child indexes from the top level.
type Path []int

// Depth is the zero-based nesting level of the addressed item.
func (p Path) Depth() int {
	return len(p) - 1
}

// Equal reports whether both paths address the same position.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether anc is p itself or one of its ancestors.
func (p Path) HasPrefix(anc Path) bool {
	if len(anc) == 0 || len(anc) > len(p) {
		return false
	}
	return p[:len(anc)].Equal(anc)
}

// Child returns a new path one level below p.
func (p Path) Child(i int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = i
	return out
}

// Parent returns the path of the enclosing item, or nil at the top level.
func (p Path) Parent() Path {
	if len(p) <= 1 {
		return nil
	}
	out := make(Path, len(p)-1)
	copy(out, p)
	return out
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// At returns the item addressed by path, or nil if the path does not exist.
func At[ID ~string, E any](items []Item[ID, E], path Path) *Item[ID, E] {
	if len(path) == 0 {
		return nil
	}
	level := items
	var it *Item[ID, E]
	for _, idx := range path {
		if idx < 0 || idx >= len(level) {
			return nil
		}
		it = &level[idx]
		level = it.Children
	}
	return it
}

// IDPath joins the ids along path with "/" (e.g. "settings/dropdownTest").
// Ids are only unique among siblings, so this is the key used for view state.
func IDPath[ID ~string, E any](items []Item[ID, E], path Path) string {
	ids := make([]string, 0, len(path))
	level := items
	for _, idx := range path {
		if idx < 0 || idx >= len(level) {
			return ""
		}
		ids = append(ids, string(level[idx].ID))
		level = level[idx].Children
	}
	return strings.Join(ids, "/")
}

// IDs returns the ids along path, nil when the path does not exist.
func IDs[ID ~string, E any](items []Item[ID, E], path Path) []ID {
	ids := make([]ID, 0, len(path))
	level := items
	for _, idx := range path {
		if idx < 0 || idx >= len(level) {
			return nil
		}
		ids = append(ids, level[idx].ID)
		level = level[idx].Children
	}
	return ids
}

// Locate finds the position of an id sequence as returned by IDs, taking the
// first sibling with a matching id at every level.
func Locate[ID ~string, E any](items []Item[ID, E], ids []ID) (Path, bool) {
	if len(ids) == 0 {
		return nil, false
	}
	path := make(Path, 0, len(ids))
	level := items
	for _, id := range ids {
		idx := -1
		for i := range level {
			if level[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, false
		}
		path = append(path, idx)
		level = level[idx].Children
	}
	return path, true
}

// Ancestors returns every proper ancestor of path, outermost first.
func (p Path) Ancestors() []Path {
	out := make([]Path, 0, len(p))
	for i := 1; i < len(p); i++ {
		anc := make(Path, i)
		copy(anc, p)
		out = append(out, anc)
	}
	return out
}
