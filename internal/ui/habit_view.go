package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"devhub/internal/habit"
	"devhub/internal/ui/textutil"
)

// HabitView renders the habit counter and handles +/-/r/e.
type HabitView struct {
	Tracker *habit.Tracker
	bar     progress.Model
	focused bool
	logger  *log.Logger
}

var (
	_ View      = (*HabitView)(nil)
	_ Focusable = (*HabitView)(nil)
	_ Resizable = (*HabitView)(nil)
)

// NewHabitView wraps tracker. logger may be nil.
func NewHabitView(tracker *habit.Tracker, logger *log.Logger) *HabitView {
	return &HabitView{
		Tracker: tracker,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(30)),
		logger:  orDiscard(logger),
	}
}

// Init implements View.
func (h *HabitView) Init() tea.Cmd { return nil }

// Update implements View.
func (h *HabitView) Update(msg tea.Msg) (View, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || !h.focused {
		return h, nil
	}
	switch k.String() {
	case "+", "=":
		h.Tracker.Increment()
		if h.Tracker.Count == h.Tracker.Goal {
			h.logger.Info("habit goal reached", "goal", h.Tracker.Goal)
		}
	case "-":
		h.Tracker.Decrement()
	case "r":
		h.Tracker.Reset()
		h.logger.Debug("habit reset")
	case "e":
		return h, func() tea.Msg { return ShowGoalEditorMsg{} }
	}
	return h, nil
}

// Focus implements Focusable.
func (h *HabitView) Focus() { h.focused = true }

// Blur implements Focusable.
func (h *HabitView) Blur() { h.focused = false }

// SetWidth implements Resizable.
func (h *HabitView) SetWidth(w int) {
	h.bar.Width = max(w, 10)
}

// View implements View.
func (h *HabitView) View() string {
	t := h.Tracker
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Daily Habit"))
	b.WriteString("\n\n")
	b.WriteString(Styles.Stat.Render(fmt.Sprintf("%d", t.Count)))
	b.WriteString(Styles.Muted.Render(fmt.Sprintf(" / %d", t.Goal)))
	b.WriteString("\n")
	b.WriteString(h.bar.ViewAs(t.Progress() / 100))
	b.WriteString("\n")
	b.WriteString(Styles.Normal.Render(textutil.Percent(t.Progress(), 1) + " complete"))
	b.WriteString("  ")
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("streak %d", t.Streak)))
	if t.Done() {
		b.WriteString("\n")
		b.WriteString(Styles.Success.Render("Goal reached!"))
	}
	if h.focused {
		b.WriteString("\n\n")
		b.WriteString(Styles.Hint.Render("+ add  - undo  r reset  e goal"))
	}
	return b.String()
}
