package ui

import "github.com/charmbracelet/lipgloss"

// Panel hosts a View inside a bordered region of the dashboard.
type Panel struct {
	ID    string
	Title string // shown in leader hints, e.g. "Tasks"
	Key   string // SPC f <Key> focuses the panel
	View  View
}

// Render draws the panel border around its view at the given outer width.
func (p *Panel) Render(width int, focused bool) string {
	style := Styles.Panel
	if focused {
		style = Styles.PanelFocused
	}
	if r, ok := p.View.(Resizable); ok {
		r.SetWidth(max(width-style.GetHorizontalFrameSize(), 1))
	}
	// lipgloss widths include padding but not the border.
	return style.Width(max(width-style.GetHorizontalBorderSize(), 1)).Render(p.View.View())
}

// joinRow places rendered panels side by side with a one-column gap.
func joinRow(cells []string) string {
	if len(cells) == 1 {
		return cells[0]
	}
	parts := make([]string, 0, len(cells)*2-1)
	for i, c := range cells {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
