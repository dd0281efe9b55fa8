package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"devhub/internal/ui/textutil"
)

// HelpOverlay lists every key binding in a scrollable window.
type HelpOverlay struct {
	viewport viewport.Model
}

var _ View = (*HelpOverlay)(nil)

const (
	defaultHelpWidth  = 56
	defaultHelpHeight = 16
)

// panelKeys documents the keys each widget handles itself.
var panelKeys = []struct{ seq, desc string }{
	{"tab / shift+tab", "Next / previous panel"},
	{"j k g G", "Move in lists"},
	{"/", "Search the focused list"},
	{"esc", "Leave search, clear term"},
	{"+ - r e", "Habit: add, undo, reset, goal"},
	{"a p c f", "Tasks: add, priority, category, filter"},
	{"x enter d", "Tasks: toggle, toggle, delete"},
	{"enter y", "Contacts: flip card, copy email"},
}

// NewHelpOverlay builds the reference from the registry's bindings.
func NewHelpOverlay(reg *KeybindRegistry) *HelpOverlay {
	vp := viewport.New(defaultHelpWidth, defaultHelpHeight)
	vp.Style = Styles.Box.Padding(0, 1)
	h := &HelpOverlay{viewport: vp}
	h.viewport.SetContent(helpContent(reg))
	return h
}

func helpContent(reg *KeybindRegistry) string {
	const col = 18
	var lines []string
	lines = append(lines, Styles.Title.Render("Keys"), "")
	for _, k := range panelKeys {
		lines = append(lines, Styles.Strong.Render(textutil.PadRight(k.seq, col))+Styles.Muted.Render(k.desc))
	}
	if reg != nil {
		hints := reg.Hints()
		seqs := make([]string, 0, len(hints))
		for s := range hints {
			seqs = append(seqs, s)
		}
		sort.Strings(seqs)
		lines = append(lines, "", Styles.Title.Render("Bindings"), "")
		for _, s := range seqs {
			lines = append(lines, Styles.Strong.Render(textutil.PadRight(s, col))+Styles.Muted.Render(hints[s]))
		}
	}
	return strings.Join(lines, "\n")
}

// Init implements View.
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (h *HelpOverlay) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return h, func() tea.Msg { return DismissModalMsg{} }
		}
	case tea.WindowSizeMsg:
		h.viewport.Width = min(max(msg.Width-4, 40), defaultHelpWidth+20)
		h.viewport.Height = max(msg.Height/2+4, 10)
		return h, nil
	}
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements View.
func (h *HelpOverlay) View() string {
	return h.viewport.View() + "\n" + Styles.Hint.Render("j/k scroll  esc close")
}
