package panel

const (
	// MaxDepth bounds how deep Walk descends.
	MaxDepth = 64
	// MaxNodes bounds how many items one traversal visits. Subtrees shared
	// between several branches are visited once per occurrence.
	MaxNodes = 1 << 16
)

// Lineage is the chain of Children slices entered on the way down to the
// current level. Go slices can alias, so a Children slice may contain its own
// ancestor; such a level is never entered a second time.
type Lineage[ID ~string, E any] []levelKey[ID, E]

type levelKey[ID ~string, E any] struct {
	first *Item[ID, E]
	n     int
}

func keyOf[ID ~string, E any](level []Item[ID, E]) levelKey[ID, E] {
	if len(level) == 0 {
		return levelKey[ID, E]{}
	}
	return levelKey[ID, E]{first: &level[0], n: len(level)}
}

// Contains reports whether level is one of the slices already entered.
// Empty levels are never reported.
func (l Lineage[ID, E]) Contains(level []Item[ID, E]) bool {
	if len(level) == 0 {
		return false
	}
	k := keyOf(level)
	for _, e := range l {
		if e == k {
			return true
		}
	}
	return false
}

// Enter returns a new lineage with level appended.
func (l Lineage[ID, E]) Enter(level []Item[ID, E]) Lineage[ID, E] {
	out := make(Lineage[ID, E], len(l), len(l)+1)
	copy(out, l)
	return append(out, keyOf(level))
}

// Match is an item found in a tree together with its position.
type Match[ID ~string, E any] struct {
	Item *Item[ID, E]
	Path Path
}

// Walk visits items depth-first, left to right, using an explicit stack.
// visit returns false to stop early. Walk reports that it truncated the tree
// when it skipped children below MaxDepth, children that alias a level
// already on the current descent, or anything past MaxNodes.
func Walk[ID ~string, E any](items []Item[ID, E], visit func(it *Item[ID, E], path Path) bool) (truncated bool) {
	type frame struct {
		level   []Item[ID, E]
		path    Path
		next    int
		lineage Lineage[ID, E]
	}
	stack := []frame{{level: items, lineage: Lineage[ID, E]{}.Enter(items)}}
	visited := 0
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.level) {
			stack = stack[:len(stack)-1]
			continue
		}
		if visited >= MaxNodes {
			return true
		}
		visited++
		i := top.next
		top.next++
		it := &top.level[i]
		path := top.path.Child(i)
		if !visit(it, path) {
			return truncated
		}
		if len(it.Children) == 0 {
			continue
		}
		if len(path) >= MaxDepth || top.lineage.Contains(it.Children) {
			truncated = true
			continue
		}
		stack = append(stack, frame{level: it.Children, path: path, lineage: top.lineage.Enter(it.Children)})
	}
	return truncated
}

// Truncated reports whether Walk cannot reach every item: the tree is deeper
// than MaxDepth, larger than MaxNodes or cyclic.
func Truncated[ID ~string, E any](items []Item[ID, E]) bool {
	return Walk(items, func(*Item[ID, E], Path) bool { return true })
}

// ResolveActive returns the active item of the tree.
//
// The first leaf flagged Active in depth-first order wins; Active flags on
// branches are ignored, including branches with an empty children slice. When
// no leaf is flagged, the top level is searched for defaultID, or, when
// defaultID is empty, the first top-level item with a non-empty id is used.
func ResolveActive[ID ~string, E any](items []Item[ID, E], defaultID ID) (Match[ID, E], bool) {
	if m, ok := explicitActive(items); ok {
		return m, true
	}
	for i := range items {
		it := &items[i]
		if defaultID != "" {
			if it.ID == defaultID {
				return Match[ID, E]{Item: it, Path: Path{i}}, true
			}
			continue
		}
		if it.ID != "" {
			return Match[ID, E]{Item: it, Path: Path{i}}, true
		}
	}
	return Match[ID, E]{}, false
}

// HasActiveDescendant reports whether any leaf in items is flagged Active.
// Unlike ResolveActive it never falls back to a default.
func HasActiveDescendant[ID ~string, E any](items []Item[ID, E]) bool {
	_, ok := explicitActive(items)
	return ok
}

func explicitActive[ID ~string, E any](items []Item[ID, E]) (Match[ID, E], bool) {
	var m Match[ID, E]
	found := false
	Walk(items, func(it *Item[ID, E], path Path) bool {
		if !it.IsBranch() && it.Active {
			m = Match[ID, E]{Item: it, Path: path}
			found = true
			return false
		}
		return true
	})
	return m, found
}

// FindBranch returns the first branch with the given id in depth-first order.
func FindBranch[ID ~string, E any](items []Item[ID, E], id ID) (Match[ID, E], bool) {
	var m Match[ID, E]
	found := false
	Walk(items, func(it *Item[ID, E], path Path) bool {
		if it.IsBranch() && it.ID == id {
			m = Match[ID, E]{Item: it, Path: path}
			found = true
			return false
		}
		return true
	})
	return m, found
}
