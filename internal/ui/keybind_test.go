package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("space x", tea.Quit)

	assert.NotNil(t, reg.Lookup("q", ""))
	assert.NotNil(t, reg.Lookup("SPC q", ""))
	assert.NotNil(t, reg.Lookup("SPC x", ""), "space normalizes to SPC")
	assert.Nil(t, reg.Lookup("unknown", ""))
}

func TestKeybindRegistry_Scoped(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindScoped("SPC e", tea.Quit, "Edit goal", PanelHabit)

	assert.NotNil(t, reg.Lookup("SPC e", PanelHabit))
	assert.Nil(t, reg.Lookup("SPC e", PanelTasks))
	assert.True(t, reg.HasPrefix("SPC", PanelHabit))
	assert.False(t, reg.HasPrefix("SPC", PanelTasks))
}

func TestKeybindRegistry_LeaderHints(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC f t", tea.Quit, "Tasks")
	reg.BindWithDesc("SPC f h", tea.Quit, "Habit")
	reg.BindWithDesc("SPC g x", tea.Quit, "")
	reg.Submenu("SPC f", "Focus")

	assert.Equal(t, map[string]string{
		"q": "Quit",
		"f": "Focus",
		"g": "g…",
	}, reg.LeaderHints("", ""))
	assert.Equal(t, map[string]string{
		"t": "Tasks",
		"h": "Habit",
	}, reg.LeaderHints("SPC f", ""))
	assert.Equal(t, map[string]string{"x": "SPC g x"}, reg.LeaderHints("SPC g", ""))
}

func TestKeybindRegistry_Hints(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.Bind("x", tea.Quit)
	reg.Bind("unbound", nil)

	assert.Equal(t, map[string]string{"q": "Quit", "x": "x"}, reg.Hints())
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg(" "), "")
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.True(t, h.LeaderWaiting)

	consumed, cmd = h.Handle(keyMsg("x"), "")
	assert.True(t, consumed)
	assert.False(t, h.LeaderWaiting, "sequence complete")
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, executed)
}

func TestKeyHandler_NestedSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC f t", func() tea.Msg { return FocusPanelMsg{ID: PanelTasks} })
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), "")
	consumed, cmd := h.Handle(keyMsg("f"), "")
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.True(t, h.LeaderWaiting, "longer binding exists")
	assert.Equal(t, []string{"SPC", "f"}, h.Buffer)

	_, cmd = h.Handle(keyMsg("t"), "")
	require.NotNil(t, cmd)
	assert.Equal(t, FocusPanelMsg{ID: PanelTasks}, cmd())
}

func TestKeyHandler_UnknownLeaderSequenceResets(t *testing.T) {
	h := NewKeyHandler(NewKeybindRegistry())
	h.Handle(keyMsg(" "), "")
	consumed, cmd := h.Handle(keyMsg("z"), "")
	assert.True(t, consumed, "keys after the leader never reach views")
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
	assert.Empty(t, h.Buffer)
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), "")
	require.True(t, h.LeaderWaiting)

	consumed, cmd := h.Handle(keyMsg("esc"), "")
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)

	consumed, _ = h.Handle(keyMsg("esc"), "")
	assert.False(t, consumed, "esc outside leader mode belongs to views")
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"), "")
	assert.True(t, consumed)
	assert.NotNil(t, cmd)

	consumed, _ = h.Handle(keyMsg("j"), "")
	assert.False(t, consumed, "unbound j falls through")
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindScoped("SPC e", tea.Quit, "Edit goal", PanelHabit)
	h := NewKeyHandler(reg)

	assert.Empty(t, RenderKeybindHelp(nil, ""))

	h.Handle(keyMsg(" "), PanelTasks)
	out := RenderKeybindHelp(h, PanelTasks)
	assert.Contains(t, out, "Quit")
	assert.Contains(t, out, "cancel")
	assert.NotContains(t, out, "Edit goal")

	out = RenderKeybindHelp(h, PanelHabit)
	assert.Contains(t, out, "Edit goal")
}

func TestKeyMap_FullHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	km := NewKeyMap(NewKeyHandler(reg), "")

	cols := km.FullHelp()
	require.Len(t, cols, 1)
	require.Len(t, cols[0], 2)
	assert.Equal(t, "q", cols[0][0].Help().Key)
	assert.Equal(t, "esc", cols[0][1].Help().Key)

	empty := NewKeyMap(NewKeyHandler(NewKeybindRegistry()), "")
	assert.Nil(t, empty.FullHelp())
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeText feeds s to v one rune at a time.
func typeText(v View, s string) View {
	for _, r := range s {
		v, _ = v.Update(keyMsg(string(r)))
	}
	return v
}
