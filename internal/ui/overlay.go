package ui

import (
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"
)

// Overlay is a modal drawn above the dashboard with a dismiss key.
type Overlay struct {
	View    View
	Dismiss string // Key that pops the overlay (e.g. "esc")
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return top, ok
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top overlay's Update and replaces its View with the result.
// Caller must run the returned cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}

// Render draws the top overlay centered in a width x height screen. With an
// unknown screen size the overlay is appended below base.
func (s *OverlayStack) Render(base string, width, height int) string {
	top, ok := s.Peek()
	if !ok {
		return base
	}
	box := top.View.View()
	if width <= 0 || height <= 0 {
		return base + "\n" + box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
