package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
// When the handler has a buffer (e.g. "SPC f"), shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler, scope string) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler, scope).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)

	prefix := "SPC"
	if len(keyHandler.Buffer) > 0 {
		prefix = strings.Join(keyHandler.Buffer, " ")
	}
	return boxStyle.Render(Styles.Muted.Render(prefix) + " " + helpModel.ShortHelpView(bindings))
}
