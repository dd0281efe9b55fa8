package ui

import (
	"github.com/charmbracelet/lipgloss"

	"devhub/internal/contacts"
	"devhub/internal/tasks"
	"devhub/internal/ui/searchlist"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, highlights
	ColorHighlight = "205" // Magenta - focused borders, selected items
	ColorDanger    = "196" // Red - high priority, errors
	ColorMuted     = "241" // Gray - hints, secondary text
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "238" // Dark gray - unfocused borders
	ColorWarning   = "208" // Orange - medium priority, away
	ColorSuccess   = "78"  // Green - done, online
	ColorInfo      = "75"  // Blue - low priority, learning
)

// Styles contains shared style definitions used across panels and modals.
var Styles = struct {
	Title        lipgloss.Style
	Banner       lipgloss.Style
	Panel        lipgloss.Style // unfocused panel border
	PanelFocused lipgloss.Style
	Box          lipgloss.Style // modal box
	Muted        lipgloss.Style
	Normal       lipgloss.Style
	Hint         lipgloss.Style
	Strong       lipgloss.Style
	Done         lipgloss.Style // completed task title
	Error        lipgloss.Style
	Success      lipgloss.Style
	Badge        lipgloss.Style
	Stat         lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Banner: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 2),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	PanelFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Strong: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Done: lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Success: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorSuccess)),
	Badge: lipgloss.NewStyle().
		Padding(0, 1),
	Stat: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
}

// ListStyles returns searchlist styles matching the theme.
func ListStyles() searchlist.Styles {
	s := searchlist.DefaultStyles()
	s.Title = Styles.Title
	s.Count = Styles.Muted
	s.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight))
	s.Placeholder = Styles.Muted
	s.Row = s.Row.BorderForeground(lipgloss.Color(ColorDim))
	s.SelectedRow = s.SelectedRow.BorderForeground(lipgloss.Color(ColorHighlight))
	return s
}

func priorityColor(p tasks.Priority) lipgloss.Color {
	switch p {
	case tasks.PriorityHigh:
		return lipgloss.Color(ColorDanger)
	case tasks.PriorityMedium:
		return lipgloss.Color(ColorWarning)
	default:
		return lipgloss.Color(ColorInfo)
	}
}

func categoryColor(c tasks.Category) lipgloss.Color {
	switch c {
	case tasks.CategoryWork:
		return lipgloss.Color(ColorHighlight)
	case tasks.CategoryPersonal:
		return lipgloss.Color(ColorAccent)
	case tasks.CategoryHealth:
		return lipgloss.Color(ColorSuccess)
	default:
		return lipgloss.Color(ColorInfo)
	}
}

func statusColor(s contacts.Status) lipgloss.Color {
	switch s {
	case contacts.StatusOnline:
		return lipgloss.Color(ColorSuccess)
	case contacts.StatusAway:
		return lipgloss.Color(ColorWarning)
	default:
		return lipgloss.Color(ColorMuted)
	}
}

// swatchColor maps a fruit color name to a terminal color.
func swatchColor(name string) lipgloss.Color {
	switch name {
	case "Red":
		return lipgloss.Color("196")
	case "Yellow":
		return lipgloss.Color("226")
	case "Orange":
		return lipgloss.Color("208")
	case "Purple":
		return lipgloss.Color("129")
	case "Green":
		return lipgloss.Color("34")
	default:
		return lipgloss.Color(ColorMuted)
	}
}
