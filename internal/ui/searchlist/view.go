package searchlist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"devhub/internal/ui/textutil"
)

// Styles controls how a list renders.
type Styles struct {
	Title       lipgloss.Style
	Count       lipgloss.Style
	Prompt      lipgloss.Style
	Placeholder lipgloss.Style
	Input       lipgloss.Style
	Empty       lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
}

// DefaultStyles returns the built-in styles.
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Count:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Input:       lipgloss.NewStyle().MarginBottom(1),
		Empty:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2),
		Row: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("238")).
			PaddingLeft(1),
		SelectedRow: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("205")).
			PaddingLeft(1),
	}
}

// CountLabel returns the pluralized visible count, e.g. "1 item", "3 items".
func (m *Model[T]) CountLabel() string {
	return textutil.Plural(m.Count(), "item", "items")
}

// Header returns the title row with the live count right-aligned when a
// width is set.
func (m *Model[T]) Header() string {
	title := m.styles.Title.Render(m.cfg.Title)
	count := m.styles.Count.Render(m.CountLabel())
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(count)
	if gap < 2 {
		gap = 2
	}
	return title + strings.Repeat(" ", gap) + count
}

// View renders the header, the search input when searchable, then either
// the empty state or one wrapped entry per visible row.
func (m *Model[T]) View() string {
	var b strings.Builder
	b.WriteString(m.Header())
	b.WriteString("\n\n")

	if m.cfg.Searchable {
		b.WriteString(m.styles.Input.Render(m.input.View()))
		b.WriteString("\n")
	}

	rows := m.Rows()
	if len(rows) == 0 {
		b.WriteString(m.styles.Empty.Render("📋 " + m.cfg.EmptyMessage))
		return b.String()
	}

	for i, r := range rows {
		style := m.styles.Row
		if m.focused && i == m.cursor {
			style = m.styles.SelectedRow
		}
		b.WriteString(style.Render(m.cfg.RenderItem(r.Item, r.Index)))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
