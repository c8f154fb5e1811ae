package ui

// FocusManager tracks and rotates focus across layout regions.
type FocusManager struct {
	Current  string   // ID of the focused region
	Order    []string // Tab order
	OnChange func(from, to string)
}

// Next moves focus to the next region in order and returns its ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous region in order and returns its ID.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.index(f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	next := ((idx+delta)%len(f.Order) + len(f.Order)) % len(f.Order)
	f.set(f.Order[next])
	return f.Current
}

// SetFocus focuses the given region. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.index(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

// SetOrder replaces the tab order. Focus stays where it is when the current
// region is still present, otherwise it moves to the first region.
func (f *FocusManager) SetOrder(order []string) {
	f.Order = order
	if len(order) == 0 {
		f.set("")
		return
	}
	if f.index(f.Current) < 0 {
		f.set(order[0])
	}
}

func (f *FocusManager) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
