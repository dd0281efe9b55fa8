package ui

import "slices"

// FocusManager tracks and rotates focus across panels.
type FocusManager struct {
	Current  string   // ID of the currently focused panel
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// NewFocusManager focuses the first ID of order.
func NewFocusManager(order []string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next advances focus to the next panel in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous panel in order.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.move(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus sets focus to the given panel ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.move(id)
	return true
}

func (f *FocusManager) move(to string) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
