package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each panel widget and each overlay is a View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Focusable views render a highlight and accept navigation while focused.
type Focusable interface {
	Focus()
	Blur()
}

// Editor is implemented by views that capture free text. While Editing
// reports true, single-key and leader bindings are not dispatched so the
// keystrokes reach the input.
type Editor interface {
	Editing() bool
}

// Resizable views adapt their content to the panel width.
type Resizable interface {
	SetWidth(w int)
}

// isEditing reports whether v is currently capturing text input.
func isEditing(v View) bool {
	e, ok := v.(Editor)
	return ok && e.Editing()
}
