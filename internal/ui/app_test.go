package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"devhub/internal/catalog"
)

func newTestApp(t *testing.T, opts Options) (*AppModel, tea.Model) {
	t.Helper()
	if opts.Now == nil {
		opts.Now = fixedNow
	}
	if opts.Clipboard == nil {
		opts.Clipboard = func(string) error { return nil }
	}
	a, err := NewAppModel(opts)
	require.NoError(t, err)
	return a, a.AsTeaModel()
}

// send runs msg through m and feeds the message of the returned command
// back once, like the Bubble Tea loop would. Commands that block (ticks,
// cursor blinks) are abandoned.
func send(m tea.Model, msg tea.Msg) {
	_, cmd := m.Update(msg)
	if cmd == nil {
		return
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case next := <-done:
		switch next.(type) {
		case nil, tea.QuitMsg, tea.BatchMsg:
			return
		}
		m.Update(next)
	case <-time.After(50 * time.Millisecond):
	}
}

func sendKeys(m tea.Model, keys ...string) {
	for _, k := range keys {
		send(m, keyMsg(k))
	}
}

func TestNewAppModel_Defaults(t *testing.T) {
	a, m := newTestApp(t, Options{})

	assert.Equal(t, []string{PanelHabit, PanelTasks, PanelContacts, PanelSnacks, PanelSkills}, a.Focus.Order,
		"the banner is not focusable")
	assert.Equal(t, PanelHabit, a.Focus.Current)
	assert.Equal(t, 100, a.Habit.Goal)
	assert.Equal(t, 3, a.Tasks.Len(), "seeded from the embedded catalog")
	assert.NotNil(t, m.Init())

	out := m.View()
	assert.Contains(t, out, "Good Morning, Developer!")
	assert.Contains(t, out, "Daily Habit")
	assert.Contains(t, out, "Healthy Snacks")
	assert.Contains(t, out, "Tech Skills")
	assert.Contains(t, out, "Contacts")
	assert.Contains(t, out, "q quit")
}

func TestApp_TabCyclesFocus(t *testing.T) {
	a, m := newTestApp(t, Options{Name: "Ada"})

	sendKeys(m, "tab")
	assert.Equal(t, PanelTasks, a.Focus.Current)
	sendKeys(m, "tab", "tab", "tab", "tab")
	assert.Equal(t, PanelHabit, a.Focus.Current, "wraps")
	sendKeys(m, "shift+tab")
	assert.Equal(t, PanelSkills, a.Focus.Current)

	skills := a.Panels[PanelSkills].View.(*ListView[string])
	habitView := a.Panels[PanelHabit].View.(*HabitView)
	assert.True(t, skills.List.Focused())
	assert.False(t, habitView.focused, "blurred on focus change")
}

func TestApp_LeaderFocus(t *testing.T) {
	a, m := newTestApp(t, Options{})

	send(m, keyMsg(" "))
	assert.True(t, a.KeyHandler.LeaderWaiting)
	assert.Contains(t, m.View(), "Focus", "leader hints replace the footer")

	send(m, keyMsg("f"))
	send(m, keyMsg("c"))
	assert.Equal(t, PanelContacts, a.Focus.Current)
	assert.False(t, a.KeyHandler.LeaderWaiting)
}

func TestApp_HabitKeysAndGoalEditor(t *testing.T) {
	a, m := newTestApp(t, Options{Goal: 5})

	sendKeys(m, "+", "+", "-", "+")
	assert.Equal(t, 2, a.Habit.Count)

	send(m, keyMsg("e"))
	require.Equal(t, 1, a.Overlays.Len())
	top, _ := a.Overlays.Peek()
	require.IsType(t, &GoalModal{}, top.View)

	sendKeys(m, "backspace", "3")
	send(m, keyMsg("enter"))
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, 3, a.Habit.Goal)
	assert.Contains(t, m.View(), "Goal set to 3")

	// SPC e is scoped to the habit panel.
	sendKeys(m, " ", "e")
	require.Equal(t, 1, a.Overlays.Len())
	sendKeys(m, "esc")
	assert.Equal(t, 0, a.Overlays.Len(), "esc dismisses")
	assert.Equal(t, 3, a.Habit.Goal)
	assert.Empty(t, a.Status)
}

func TestApp_SetGoalRejectsInvalid(t *testing.T) {
	a, m := newTestApp(t, Options{})
	send(m, SetGoalMsg{Goal: 0})
	assert.Equal(t, 100, a.Habit.Goal)
	assert.True(t, a.statusErr)
}

func TestApp_EditingSuppressesGlobalKeys(t *testing.T) {
	a, m := newTestApp(t, Options{})
	sendKeys(m, "tab") // tasks
	sendKeys(m, "a", "q", "u", "i", "t")

	tv := a.Panels[PanelTasks].View.(*TasksView)
	assert.True(t, tv.Editing())
	assert.Equal(t, "quit", tv.input.Value(), "q is typed, not quit")

	sendKeys(m, " ", "n", "o", "w")
	assert.False(t, a.KeyHandler.LeaderWaiting, "space is typed, not the leader")
	send(m, keyMsg("enter"))
	assert.Equal(t, 4, a.Tasks.Len())

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_SearchInListSuppressesGlobalKeys(t *testing.T) {
	a, m := newTestApp(t, Options{})
	send(m, FocusPanelMsg{ID: PanelSnacks})
	sendKeys(m, "/", "q", "?")

	snacks := a.Panels[PanelSnacks].View.(*ListView[catalog.Fruit])
	assert.Equal(t, "q?", snacks.List.SearchTerm())
	assert.Equal(t, 0, a.Overlays.Len())

	sendKeys(m, "esc", "esc")
	assert.Equal(t, "", snacks.List.SearchTerm())
}

func TestApp_CtrlCAlwaysQuits(t *testing.T) {
	_, m := newTestApp(t, Options{})
	send(m, ShowGoalEditorMsg{})
	_, cmd := m.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_HelpOverlay(t *testing.T) {
	a, m := newTestApp(t, Options{})
	send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	sendKeys(m, "?")
	require.Equal(t, 1, a.Overlays.Len())
	out := m.View()
	assert.Contains(t, out, "Bindings")
	assert.Contains(t, out, "Search the focused list")
	assert.NotContains(t, out, "Daily Habit", "the overlay replaces the grid")

	send(m, ShowHelpMsg{})
	assert.Equal(t, 1, a.Overlays.Len(), "help opens once")

	sendKeys(m, "?")
	assert.Equal(t, 0, a.Overlays.Len())

	sendKeys(m, "?", "q")
	assert.Equal(t, 0, a.Overlays.Len(), "q closes help instead of quitting")
}

func TestApp_CopyEmailStatus(t *testing.T) {
	var copied string
	a, m := newTestApp(t, Options{Clipboard: func(s string) error {
		copied = s
		return nil
	}})
	send(m, FocusPanelMsg{ID: PanelContacts})
	send(m, keyMsg("y"))
	assert.Equal(t, "alice@company.com", copied)
	assert.Equal(t, "Copied alice@company.com", a.Status)
	assert.False(t, a.statusErr)
}

func TestApp_TickAdvancesClock(t *testing.T) {
	a, m := newTestApp(t, Options{Name: "Ada", Tick: 10 * time.Millisecond})
	_, cmd := m.Update(tickMsg(friday.Add(5 * time.Hour)))
	assert.NotNil(t, cmd, "schedules the next tick")
	g := a.Panels[PanelGreeting].View.(*GreetingView)
	assert.Equal(t, friday.Add(5*time.Hour), g.Now)
	assert.Contains(t, m.View(), "Good Afternoon, Ada!")
}

func TestApp_GreetingStatsFollowState(t *testing.T) {
	a, m := newTestApp(t, Options{})
	g := a.Panels[PanelGreeting].View.(*GreetingView)
	assert.Equal(t, "2", g.Stats()[0].Value)

	send(m, FocusPanelMsg{ID: PanelTasks})
	sendKeys(m, "x")
	assert.Equal(t, "1", g.Stats()[0].Value)
	assert.Equal(t, "67%", g.Stats()[2].Value)
}

func TestApp_FilterSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	a, m := newTestApp(t, Options{Tracer: tp.Tracer("test")})

	send(m, FocusPanelMsg{ID: PanelSkills})
	sendKeys(m, "/", "g", "o")
	assert.Len(t, rec.Ended(), 2, "one span per term change")
	assert.Equal(t, "searchlist.filter", rec.Ended()[0].Name())
	assert.Equal(t, PanelSkills, a.Focus.Current)
}
